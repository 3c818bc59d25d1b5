package schema

import (
	"fmt"

	"github.com/gnames/gnfmt"
	"github.com/gnames/npdb/pkg/record"
	"github.com/lib/pq"
)

var enc = gnfmt.GNjson{}

// FromRecord converts a record to its row.
func FromRecord(np *record.NaturalProduct) (NaturalProduct, error) {
	res := NaturalProduct{
		AccessionID:        np.AccessionID,
		Name:               np.Name,
		NameTrustLevel:     np.NameTrustLevel,
		Synonyms:           pq.StringArray(nonNil(np.Synonyms)),
		IUPACName:          np.IUPACName,
		TextTaxa:           pq.StringArray(nonNil(np.TextTaxa)),
		TaxonomyIDs:        pq.StringArray(nonNil(np.TaxonomyIDs)),
		Citations:          pq.StringArray(nonNil(np.Citations)),
		CAS:                np.CAS,
		FoundInDatabases:   pq.StringArray(nonNil(np.FoundInDatabases)),
		AnnotationLevel:    np.AnnotationLevel,
		InChIKey:           np.InChIKey,
		InChI:              np.InChI,
		SMILES:             np.SMILES,
		ChemicalSuperClass: np.SuperClass,
		ChemicalClass:      np.Class,
		ChemicalSubClass:   np.SubClass,
		DirectParent:       np.DirectParent,
	}

	var err error
	if res.XRefs, err = EncodeXRefs(np.XRefs); err != nil {
		return res, err
	}
	if res.CleanXRefs, err = EncodeCleanXRefs(np.CleanXRefs); err != nil {
		return res, err
	}
	return res, nil
}

// ToRecord converts a row to a record.
func (n NaturalProduct) ToRecord() (*record.NaturalProduct, error) {
	res := record.NaturalProduct{
		AccessionID:      n.AccessionID,
		Name:             n.Name,
		NameTrustLevel:   n.NameTrustLevel,
		Synonyms:         []string(n.Synonyms),
		IUPACName:        n.IUPACName,
		TextTaxa:         []string(n.TextTaxa),
		TaxonomyIDs:      []string(n.TaxonomyIDs),
		Citations:        []string(n.Citations),
		CAS:              n.CAS,
		FoundInDatabases: []string(n.FoundInDatabases),
		AnnotationLevel:  n.AnnotationLevel,
		InChIKey:         n.InChIKey,
		InChI:            n.InChI,
		SMILES:           n.SMILES,
		Classification: record.Classification{
			SuperClass:   n.ChemicalSuperClass,
			Class:        n.ChemicalClass,
			SubClass:     n.ChemicalSubClass,
			DirectParent: n.DirectParent,
		},
	}
	if len(n.XRefs) > 0 {
		if err := enc.Decode(n.XRefs, &res.XRefs); err != nil {
			return nil, fmt.Errorf("cross_references of %s: %w", n.AccessionID, err)
		}
	}
	if len(n.CleanXRefs) > 0 {
		if err := enc.Decode(n.CleanXRefs, &res.CleanXRefs); err != nil {
			return nil, fmt.Errorf("clean_cross_references of %s: %w", n.AccessionID, err)
		}
	}
	return &res, nil
}

// EncodeXRefs converts cross-references to JSONB value.
func EncodeXRefs(xs []record.XRef) ([]byte, error) {
	return enc.Encode(nonNil(xs))
}

// EncodeCleanXRefs converts display cross-references to JSONB value.
func EncodeCleanXRefs(xs []record.CleanXRef) ([]byte, error) {
	return enc.Encode(nonNil(xs))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
