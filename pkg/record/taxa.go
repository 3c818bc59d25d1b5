package record

import (
	"slices"
	"strings"
)

// AddTaxa adds organism names. Empty strings and "NA" are ignored. The
// sentinel NoTaxon is removed as soon as a real organism is present, and
// is not added to a record that already has one.
func (np *NaturalProduct) AddTaxa(ss ...string) bool {
	var changed bool
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v == "" || v == "NA" {
			continue
		}
		if v == NoTaxon && len(np.TextTaxa) > 0 {
			continue
		}
		if addToSet(&np.TextTaxa, v) {
			changed = true
		}
	}
	if np.HasOrganism() && slices.Contains(np.TextTaxa, NoTaxon) {
		np.TextTaxa = slices.DeleteFunc(np.TextTaxa, func(s string) bool {
			return s == NoTaxon
		})
		changed = true
	}
	return changed
}

// ReplaceTaxa substitutes organism names, for example with canonical
// forms. Names missing from replace stay as they are.
func (np *NaturalProduct) ReplaceTaxa(replace map[string]string) bool {
	if len(replace) == 0 {
		return false
	}
	res := make([]string, 0, len(np.TextTaxa))
	for _, v := range np.TextTaxa {
		if r, ok := replace[v]; ok && r != "" {
			v = r
		}
		if !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	if slices.Equal(res, np.TextTaxa) {
		return false
	}
	np.TextTaxa = res
	return true
}

// HasOrganism reports whether the record has at least one real organism.
func (np *NaturalProduct) HasOrganism() bool {
	return slices.ContainsFunc(np.TextTaxa, func(s string) bool {
		return s != NoTaxon
	})
}

// AddTaxonIDs adds taxonomy ids after stripping qualifier suffixes.
func (np *NaturalProduct) AddTaxonIDs(ids ...string) bool {
	var changed bool
	for _, v := range ids {
		v = NormalizeTaxonID(v)
		if v == "" || v == "NA" {
			continue
		}
		if addToSet(&np.TaxonomyIDs, v) {
			changed = true
		}
	}
	return changed
}

// NormalizeTaxonIDs strips qualifier suffixes from stored taxonomy ids.
func (np *NaturalProduct) NormalizeTaxonIDs() bool {
	var res []string
	for _, v := range np.TaxonomyIDs {
		v = NormalizeTaxonID(v)
		if v == "" || slices.Contains(res, v) {
			continue
		}
		res = append(res, v)
	}
	if slices.Equal(res, np.TaxonomyIDs) {
		return false
	}
	np.TaxonomyIDs = res
	return true
}

// NormalizeTaxonID removes everything starting from the first dash, so
// "1234-5" becomes "1234".
func NormalizeTaxonID(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.Index(id, "-"); i >= 0 {
		id = id[:i]
	}
	return strings.TrimSpace(id)
}
