package curation

import (
	"github.com/gnames/npdb/pkg/record"
)

// KnapSackRow is a line of the KnapSack export.
type KnapSackRow struct {
	Accession  string
	KnapSackID string
	Species    string
	Reference  string
}

func (r KnapSackRow) AccessionID() string { return r.Accession }

// Merge records the occurrence in KnapSack with its organism and reference.
func (r KnapSackRow) Merge(np *record.NaturalProduct, env *Env) {
	addDatabase(np, env)
	np.AddTaxa(r.Species)
	np.AddCitations(r.Reference)
	addXRef(np, env, r.KnapSackID)
}

// ChEBIRow is a line of the ChEBI export.
type ChEBIRow struct {
	Accession string
	ChEBIID   string
	Name      string
	Synonyms  []string
	Species   []string
	TaxonIDs  []string
	PubMedIDs []string
}

func (r ChEBIRow) AccessionID() string { return r.Accession }

// Merge takes the ChEBI name (or its first synonym when the name is empty)
// as a name candidate, and adds synonyms, organisms and references.
func (r ChEBIRow) Merge(np *record.NaturalProduct, env *Env) {
	addDatabase(np, env)

	cand := r.Name
	if cand == "" && len(r.Synonyms) > 0 {
		cand = r.Synonyms[0]
	}
	selectName(np, env, cand)
	addSynonyms(np, env, r.Synonyms)

	np.AddTaxa(r.Species...)
	np.AddTaxonIDs(r.TaxonIDs...)
	np.AddCitations(r.PubMedIDs...)
	addXRef(np, env, r.ChEBIID)
}

// Plant is an organism of the CMAUP plants table.
type Plant struct {
	ID      string
	Name    string
	TaxonID string
}

// CMAUPRow is a line of the CMAUP mapping joined with ingredient names and
// the plants that produce the ingredient.
type CMAUPRow struct {
	Accession string
	CMAUPID   string
	Name      string
	Plants    []Plant
}

func (r CMAUPRow) AccessionID() string { return r.Accession }

// CMAUPTaxon is added to every record found in CMAUP, which only covers
// compounds produced by plants.
const CMAUPTaxon = "plants"

// Merge records the occurrence in CMAUP with its plants.
func (r CMAUPRow) Merge(np *record.NaturalProduct, env *Env) {
	addDatabase(np, env)
	selectName(np, env, r.Name)

	np.AddTaxa(CMAUPTaxon)
	for _, p := range r.Plants {
		np.AddTaxa(p.Name)
		np.AddTaxonIDs(p.TaxonID)
	}
	addXRef(np, env, r.CMAUPID)
}

// PubChemRow is a line of the PubChem export.
type PubChemRow struct {
	CID       string
	Accession string
	Name      string
	IUPAC     string
	CAS       []string
	Synonyms  []string
}

func (r PubChemRow) AccessionID() string { return r.Accession }

// Merge sets IUPAC name and CAS number when they are absent, and takes the
// PubChem name as a name candidate.
func (r PubChemRow) Merge(np *record.NaturalProduct, env *Env) {
	addDatabase(np, env)
	np.SetIUPAC(r.IUPAC)
	selectName(np, env, r.Name)
	addSynonyms(np, env, r.Synonyms)
	if len(r.CAS) > 0 {
		np.SetCAS(r.CAS[0])
	}
	addXRef(np, env, r.CID)
}
