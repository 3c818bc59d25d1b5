// Package curation holds merge rules of curation passes. A vendor row is
// merged into an in-memory record; collection passes transform every
// record of the collection. Nothing here touches a database.
package curation

import (
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/sources"
)

// Env carries what merges need besides the row itself.
type Env struct {
	// Names decides on low-quality names and picks display names.
	Names *names.Curator

	// Source supplies tags, link prefix and trust level of a vendor.
	Source sources.Source

	// TitleCase capitalizes words of names that differ from IUPAC names.
	TitleCase bool
}

// Row is a vendor row joined to a record by accession id.
type Row interface {
	// AccessionID of the record the row belongs to.
	AccessionID() string

	// Merge applies the row to the record.
	Merge(np *record.NaturalProduct, env *Env)
}

// Transform changes one record during a collection pass.
type Transform func(np *record.NaturalProduct)

// selectName runs the best-name policy and stores the result.
func selectName(np *record.NaturalProduct, env *Env, candidate string) {
	cur := names.Current{
		Name:  np.Name,
		Trust: np.NameTrustLevel,
		IUPAC: np.IUPACName,
	}
	d := env.Names.SelectName(cur, candidate, env.Source.NameTrustLevel)
	np.Name = d.Name
	np.NameTrustLevel = d.Trust
	np.AddSynonyms(d.Archive...)
}

// addSynonyms adds usable synonyms only.
func addSynonyms(np *record.NaturalProduct, env *Env, ss []string) {
	np.AddSynonyms(env.Names.CleanSynonyms(np.Name, ss)...)
}

func addXRef(np *record.NaturalProduct, env *Env, id string) {
	if env.Source.XRefTag == "" {
		return
	}
	np.AddXRef(env.Source.XRefTag, id, env.Source.XRefURL)
}

func addDatabase(np *record.NaturalProduct, env *Env) {
	if env.Source.DatabaseTag == "" {
		return
	}
	np.AddDatabases(env.Source.DatabaseTag)
}
