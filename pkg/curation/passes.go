package curation

import (
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/npdb/pkg/parserpool"
	"github.com/gnames/npdb/pkg/record"
)

// NormalizeXRefs rebuilds display cross-references.
func NormalizeXRefs(pretty map[string]string) Transform {
	return func(np *record.NaturalProduct) {
		np.DedupXRefs()
		np.NormalizeXRefs(pretty)
	}
}

// NormalizeTaxonIDs strips qualifiers from stored taxonomy ids.
func NormalizeTaxonIDs() Transform {
	return func(np *record.NaturalProduct) {
		np.NormalizeTaxonIDs()
	}
}

// Annotate recomputes annotation levels.
func Annotate(trusted []string) Transform {
	return func(np *record.NaturalProduct) {
		np.UpdateAnnotationLevel(trusted)
	}
}

// Classify sets chemical taxonomy from a lookup by InChIKey. Records
// missing from the lookup keep their classification.
func Classify(byInChIKey map[string]record.Classification) Transform {
	return func(np *record.NaturalProduct) {
		key := strings.TrimSpace(np.InChIKey)
		if cl, ok := byInChIKey[key]; ok && key != "" {
			np.SetClassification(cl)
		}
	}
}

// CanonicalTaxa replaces organism names with canonical scientific names.
// Names that do not parse stay as they are. Records found in CMAUP are
// parsed with the botanical code.
func CanonicalTaxa(pool parserpool.Pool) Transform {
	return func(np *record.NaturalProduct) {
		code := nomcode.Zoological
		for _, v := range np.FoundInDatabases {
			if v == "cmaup" {
				code = nomcode.Botanical
				break
			}
		}
		replace := make(map[string]string)
		for _, v := range np.TextTaxa {
			if v == record.NoTaxon || v == CMAUPTaxon {
				continue
			}
			if canon, ok := pool.Canonical(v, code); ok && canon != v {
				replace[v] = canon
			}
		}
		np.ReplaceTaxa(replace)
	}
}

// Chain runs transforms in order.
func Chain(ts ...Transform) Transform {
	return func(np *record.NaturalProduct) {
		for _, t := range ts {
			t(np)
		}
	}
}
