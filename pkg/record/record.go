// Package record describes a natural-product record and the merge rules
// that curation passes apply to it. All functions are pure and operate on
// in-memory records.
package record

import (
	"slices"
	"strings"
)

// NoTaxon is the sentinel organism meaning that no organism is known.
const NoTaxon = "notax"

// Field names match database columns.
const (
	FieldName               = "name"
	FieldNameTrustLevel     = "name_trust_level"
	FieldSynonyms           = "synonyms"
	FieldIUPACName          = "iupac_name"
	FieldTextTaxa           = "text_taxa"
	FieldTaxonomyIDs        = "taxonomy_ids"
	FieldCitations          = "citation_references"
	FieldCAS                = "cas_number"
	FieldFoundInDatabases   = "found_in_databases"
	FieldXRefs              = "cross_references"
	FieldCleanXRefs         = "clean_cross_references"
	FieldAnnotationLevel    = "annotation_level"
	FieldChemicalSuperClass = "chemical_super_class"
	FieldChemicalClass      = "chemical_class"
	FieldChemicalSubClass   = "chemical_sub_class"
	FieldDirectParent       = "direct_parent_classification"
)

// NaturalProduct is one unique compound of the collection.
type NaturalProduct struct {
	// AccessionID is the stable public identifier, for example CNP0123456.
	AccessionID string `json:"accession_id"`

	Name           string   `json:"name"`
	NameTrustLevel int      `json:"name_trust_level"`
	Synonyms       []string `json:"synonyms"`
	IUPACName      string   `json:"iupac_name"`

	TextTaxa    []string `json:"text_taxa"`
	TaxonomyIDs []string `json:"taxonomy_ids"`
	Citations   []string `json:"citation_references"`

	CAS              string   `json:"cas_number"`
	FoundInDatabases []string `json:"found_in_databases"`

	XRefs      []XRef      `json:"cross_references"`
	CleanXRefs []CleanXRef `json:"clean_cross_references"`

	AnnotationLevel int `json:"annotation_level"`

	// Structure identifiers are read-only inputs of classification.
	InChIKey string `json:"inchikey"`
	InChI    string `json:"inchi"`
	SMILES   string `json:"smiles"`

	Classification
}

// Classification is the chemical taxonomy of a compound.
type Classification struct {
	SuperClass   string `json:"chemical_super_class"`
	Class        string `json:"chemical_class"`
	SubClass     string `json:"chemical_sub_class"`
	DirectParent string `json:"direct_parent_classification"`
}

// Clone returns a deep copy of the record.
func (np *NaturalProduct) Clone() *NaturalProduct {
	res := *np
	res.Synonyms = slices.Clone(np.Synonyms)
	res.TextTaxa = slices.Clone(np.TextTaxa)
	res.TaxonomyIDs = slices.Clone(np.TaxonomyIDs)
	res.Citations = slices.Clone(np.Citations)
	res.FoundInDatabases = slices.Clone(np.FoundInDatabases)
	res.XRefs = slices.Clone(np.XRefs)
	res.CleanXRefs = slices.Clone(np.CleanXRefs)
	return &res
}

// AddSynonyms adds names to synonyms with set semantics.
func (np *NaturalProduct) AddSynonyms(ss ...string) bool {
	return addToSet(&np.Synonyms, ss...)
}

// AddCitations adds literature references with set semantics.
func (np *NaturalProduct) AddCitations(ss ...string) bool {
	return addToSet(&np.Citations, ss...)
}

// AddDatabases adds source database tags with set semantics.
func (np *NaturalProduct) AddDatabases(ss ...string) bool {
	return addToSet(&np.FoundInDatabases, ss...)
}

// SetCAS sets CAS registry number if the record has none.
func (np *NaturalProduct) SetCAS(s string) bool {
	s = strings.TrimSpace(s)
	if np.CAS != "" || s == "" {
		return false
	}
	np.CAS = s
	return true
}

// SetIUPAC sets the systematic name if the record has none. Once set, the
// IUPAC name is never overwritten.
func (np *NaturalProduct) SetIUPAC(s string) bool {
	s = strings.TrimSpace(s)
	if np.IUPACName != "" || s == "" {
		return false
	}
	np.IUPACName = s
	return true
}

// SetClassification overwrites the chemical taxonomy.
func (np *NaturalProduct) SetClassification(c Classification) bool {
	if np.Classification == c {
		return false
	}
	np.Classification = c
	return true
}

func addToSet(set *[]string, ss ...string) bool {
	var changed bool
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(*set, v) {
			continue
		}
		*set = append(*set, v)
		changed = true
	}
	return changed
}
