// Package sources describes sources.yaml: where vendor export files live
// and how records found in each vendor are tagged.
//
// Known sources are knapsack, chebi, cmaup, pubchem (vendor merges),
// iupac (systematic names) and classification (chemical taxonomy export).
package sources

// Sources loads the sources configuration.
type Sources interface {
	Load() (*SourcesConfig, error)
}

// Names of known sources.
const (
	KnapSack       = "knapsack"
	ChEBI          = "chebi"
	CMAUP          = "cmaup"
	PubChem        = "pubchem"
	IUPAC          = "iupac"
	Classification = "classification"
)

// VendorOrder is the order in which vendor merges run by default.
var VendorOrder = []string{KnapSack, ChEBI, CMAUP, PubChem}

// Keys of files each source needs.
const (
	FileData         = "data"
	FileMapping      = "mapping"
	FileIngredients  = "ingredients"
	FilePlants       = "plants"
	FileAssociations = "associations"
)

var requiredFiles = map[string][]string{
	KnapSack:       {FileData},
	ChEBI:          {FileData},
	CMAUP:          {FileMapping, FileIngredients, FilePlants, FileAssociations},
	PubChem:        {FileData},
	IUPAC:          {FileData},
	Classification: {FileData},
}

var vendors = map[string]struct{}{
	KnapSack: {}, ChEBI: {}, CMAUP: {}, PubChem: {},
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	Sources map[string]Source `yaml:"sources"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Source     string
	Field      string
	Message    string
	Suggestion string
}

// Source is the configuration of one source.
type Source struct {
	// Name is the key of the source in sources.yaml.
	Name string `yaml:"-"`

	// Files maps file keys to locations. A location is a local path
	// (~ is expanded), an http(s) URL or s3://bucket/key.
	Files map[string]string `yaml:"files"`

	// DatabaseTag is added to found_in_databases of matched records.
	DatabaseTag string `yaml:"database_tag,omitempty"`

	// XRefTag is the source of cross-references to the vendor.
	XRefTag string `yaml:"xref_tag,omitempty"`

	// XRefURL is the link prefix of vendor entries.
	XRefURL string `yaml:"xref_url,omitempty"`

	// NameTrustLevel ranks names coming from the vendor. Higher levels
	// resist being overwritten by lower ones.
	NameTrustLevel int `yaml:"name_trust_level,omitempty"`
}

// File returns location of the file with the given key.
func (s Source) File(key string) string {
	return s.Files[key]
}

// IsVendor reports whether name is a vendor merged by the curate command.
func IsVendor(name string) bool {
	_, ok := vendors[name]
	return ok
}
