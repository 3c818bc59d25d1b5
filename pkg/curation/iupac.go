package curation

import (
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/record"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IUPACRow is a line of the systematic names file.
type IUPACRow struct {
	IUPAC     string
	Accession string
}

func (r IUPACRow) AccessionID() string { return r.Accession }

// Merge sets the IUPAC name once. A low-quality display name is replaced
// by the IUPAC name; a display name shaped like a CAS number also becomes
// the CAS number when the record has none. Low-quality synonyms are
// removed.
func (r IUPACRow) Merge(np *record.NaturalProduct, env *Env) {
	np.SetIUPAC(r.IUPAC)

	if names.IsCAS(np.Name) {
		np.SetCAS(names.Normalize(np.Name))
	}

	d := env.Names.FallbackToIUPAC(names.Current{
		Name:  np.Name,
		Trust: np.NameTrustLevel,
		IUPAC: np.IUPACName,
	})
	np.Name = d.Name

	np.Synonyms = env.Names.CleanSynonyms(np.Name, np.Synonyms)

	if env.TitleCase {
		TitleCase(np)
	}
}

// TitleCase capitalizes words of a name that differs from the IUPAC name.
// Records without IUPAC name keep their names.
func TitleCase(np *record.NaturalProduct) {
	if np.IUPACName == "" || np.Name == "" || np.Name == np.IUPACName {
		return
	}
	np.Name = cases.Title(language.Und).String(np.Name)
}
