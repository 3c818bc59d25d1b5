package record

import (
	"slices"
	"strings"
)

// XRef links a record to an entry of an external database.
type XRef struct {
	// Source is the internal tag of the database, like chebi_np.
	Source string `json:"source"`
	// ID is the identifier of the entry in the source.
	ID string `json:"id"`
	// URL is the link prefix of the source. The entry page is URL+ID.
	URL string `json:"url"`
}

// CleanXRef is the display form of XRef.
type CleanXRef struct {
	Source       string `json:"source"`
	IDInSource   string `json:"id_in_source"`
	LinkToSource string `json:"link_to_source"`
}

// PrettySources maps internal source tags to display names.
var PrettySources = map[string]string{
	"bitterdb":          "BitterDB",
	"carotenoids":       "Carotenoids Database",
	"chebi_np":          "ChEBI",
	"chebinp":           "ChEBI",
	"chembl_np":         "ChEMBL",
	"chemblnp":          "ChEMBL",
	"cmaup":             "CMAUP",
	"pubchem_tested_np": "PubChem",
	"pubchemnp":         "PubChem",
	"drugbanknp":        "DrugBank",
	"chemspidernp":      "ChemSpider",
	"np_atlas_2019_12":  "NPAtlas",
	"npatlas":           "NPAtlas",
	"exposome-explorer": "Exposome Explorer",
	"fooddb":            "FooDB",
	"knapsack":          "KnapSack",
	"npass":             "NPASS",
	"nubbe":             "NuBBE",
	"phenolexplorer":    "Phenol Explorer",
	"sancdb":            "SANCDB",
	"supernatural2":     "SuperNatural 2",
	"tcmdb_taiwan":      "TCMDB@Taiwan",
	"tppt":              "TPPT",
	"vietherb":          "VietHerb",
	"streptomedb":       "StreptomeDB",
}

// AddXRef appends a cross-reference unless one with the same source and
// id already exists.
func (np *NaturalProduct) AddXRef(source, id, url string) bool {
	source = strings.TrimSpace(source)
	id = strings.TrimSpace(id)
	if source == "" || id == "" {
		return false
	}
	if np.HasXRef(source, id) {
		return false
	}
	np.XRefs = append(np.XRefs, XRef{Source: source, ID: id, URL: url})
	return true
}

// HasXRef reports whether the record links to the entry id of source.
func (np *NaturalProduct) HasXRef(source, id string) bool {
	return slices.ContainsFunc(np.XRefs, func(x XRef) bool {
		return x.Source == source && x.ID == id
	})
}

// DedupXRefs removes repeated (source, id) pairs keeping the first one.
func (np *NaturalProduct) DedupXRefs() bool {
	type key struct{ src, id string }
	seen := make(map[key]struct{}, len(np.XRefs))
	res := make([]XRef, 0, len(np.XRefs))
	for _, v := range np.XRefs {
		k := key{v.Source, v.ID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	if len(res) == len(np.XRefs) {
		return false
	}
	np.XRefs = res
	return true
}

// NormalizeXRefs rebuilds CleanXRefs from XRefs. Sources missing from
// pretty are skipped. Rebuilding an unchanged record changes nothing.
func (np *NaturalProduct) NormalizeXRefs(pretty map[string]string) bool {
	res := make([]CleanXRef, 0, len(np.XRefs))
	for _, v := range np.XRefs {
		name, ok := pretty[v.Source]
		if !ok {
			continue
		}
		cx := CleanXRef{
			Source:       name,
			IDInSource:   v.ID,
			LinkToSource: Link(v.URL, v.ID),
		}
		if slices.Contains(res, cx) {
			continue
		}
		res = append(res, cx)
	}
	if slices.Equal(res, np.CleanXRefs) {
		return false
	}
	np.CleanXRefs = res
	return true
}

// Link makes a link to an entry from a link prefix and an id.
func Link(url, id string) string {
	if url == "" || strings.HasSuffix(url, id) {
		return url
	}
	return url + id
}
