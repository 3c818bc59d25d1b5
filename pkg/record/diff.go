package record

import (
	"slices"
)

// Patch holds the new state of a record and the fields that changed.
// A store writes only the listed fields.
type Patch struct {
	Record *NaturalProduct
	Fields []string
}

// AccessionID of the patched record.
func (p Patch) AccessionID() string {
	return p.Record.AccessionID
}

// Diff returns names of fields that differ between two versions of
// a record. Set fields are compared regardless of order.
func Diff(orig, upd *NaturalProduct) []string {
	var res []string
	add := func(changed bool, field string) {
		if changed {
			res = append(res, field)
		}
	}

	add(orig.Name != upd.Name, FieldName)
	add(orig.NameTrustLevel != upd.NameTrustLevel, FieldNameTrustLevel)
	add(!sameSet(orig.Synonyms, upd.Synonyms), FieldSynonyms)
	add(orig.IUPACName != upd.IUPACName, FieldIUPACName)
	add(!sameSet(orig.TextTaxa, upd.TextTaxa), FieldTextTaxa)
	add(!sameSet(orig.TaxonomyIDs, upd.TaxonomyIDs), FieldTaxonomyIDs)
	add(!sameSet(orig.Citations, upd.Citations), FieldCitations)
	add(orig.CAS != upd.CAS, FieldCAS)
	add(!sameSet(orig.FoundInDatabases, upd.FoundInDatabases), FieldFoundInDatabases)
	add(!slices.Equal(orig.XRefs, upd.XRefs), FieldXRefs)
	add(!slices.Equal(orig.CleanXRefs, upd.CleanXRefs), FieldCleanXRefs)
	add(orig.AnnotationLevel != upd.AnnotationLevel, FieldAnnotationLevel)
	add(orig.SuperClass != upd.SuperClass, FieldChemicalSuperClass)
	add(orig.Class != upd.Class, FieldChemicalClass)
	add(orig.SubClass != upd.SubClass, FieldChemicalSubClass)
	add(orig.DirectParent != upd.DirectParent, FieldDirectParent)
	return res
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}
