// Package iovendor reads vendor export files of KnapSack, ChEBI, CMAUP,
// PubChem, IUPAC names and chemical classification.
package iovendor

import (
	"strings"

	"github.com/gnames/npdb/pkg/curation"
)

// Format describes the column layout of a vendor file.
type Format struct {
	// Name of the format for logs.
	Name string

	// Sep separates columns.
	Sep string

	// MinFields is the smallest acceptable number of columns.
	MinFields int

	// Header is the prefix of a header line. Lines starting with it are
	// skipped.
	Header string

	// Parse converts columns to a row.
	Parse func(fields []string) curation.Row
}

// KnapSack: accession id, KnapSack id, species, reference.
var KnapSack = Format{
	Name:      "knapsack",
	Sep:       "\t",
	MinFields: 4,
	Parse: func(f []string) curation.Row {
		return curation.KnapSackRow{
			Accession:  f[0],
			KnapSackID: f[1],
			Species:    f[2],
			Reference:  f[3],
		}
	},
}

// ChEBI: accession id, ChEBI id, name, synonyms, species, taxonomy ids,
// PubMed ids. Lists are separated by "$$".
var ChEBI = Format{
	Name:      "chebi",
	Sep:       "\t",
	MinFields: 7,
	Parse: func(f []string) curation.Row {
		return curation.ChEBIRow{
			Accession: f[0],
			ChEBIID:   f[1],
			Name:      f[2],
			Synonyms:  splitList(f[3], "$$"),
			Species:   splitList(f[4], "$$"),
			TaxonIDs:  splitList(f[5], "$$"),
			PubMedIDs: splitList(f[6], "$$"),
		}
	},
}

// PubChem: CID, accession id, name, IUPAC name, then optional CAS list and
// synonyms list written as Python lists.
var PubChem = Format{
	Name:      "pubchem",
	Sep:       "\t",
	MinFields: 4,
	Parse: func(f []string) curation.Row {
		res := curation.PubChemRow{
			CID:       f[0],
			Accession: f[1],
			Name:      f[2],
			IUPAC:     f[3],
		}
		if len(f) > 4 {
			res.CAS = ParsePyList(f[4])
		}
		if len(f) > 5 {
			res.Synonyms = ParsePyList(f[5])
		}
		return res
	},
}

// IUPAC: IUPAC name, accession id.
var IUPAC = Format{
	Name:      "iupac",
	Sep:       "\t",
	MinFields: 2,
	Parse: func(f []string) curation.Row {
		return curation.IUPACRow{IUPAC: f[0], Accession: f[1]}
	},
}

func splitList(s, sep string) []string {
	var res []string
	for _, v := range strings.Split(s, sep) {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// ParsePyList parses a list printed by Python, like
// "['870-77-9', "Ammonium, inner salt"]". Items may contain commas.
func ParsePyList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var res []string
	for {
		s = strings.TrimLeft(s, ", ")
		if s == "" {
			return res
		}

		q := s[0]
		if q != '\'' && q != '"' {
			i := strings.Index(s, ", ")
			if i < 0 {
				return append(res, strings.TrimSpace(s))
			}
			res = append(res, s[:i])
			s = s[i+2:]
			continue
		}

		end := strings.Index(s[1:], string(q)+", ")
		if end < 0 {
			return append(res, strings.TrimSuffix(s[1:], string(q)))
		}
		res = append(res, s[1:end+1])
		s = s[end+3:]
	}
}
