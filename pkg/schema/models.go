// Package schema provides database models of npdb. The same structs drive
// GORM AutoMigrate and plain DDL generation.
package schema

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// NaturalProduct is a row of natural_products, one unique compound.
type NaturalProduct struct {
	// AccessionID is the public identifier, for example CNP0123456.
	AccessionID string `gorm:"column:accession_id;primaryKey;type:varchar(32)" db:"accession_id" ddl:"VARCHAR(32) PRIMARY KEY"`

	Name           string         `gorm:"column:name;type:text;not null;default:''" db:"name" ddl:"TEXT NOT NULL DEFAULT ''"`
	NameTrustLevel int            `gorm:"column:name_trust_level;not null;default:0" db:"name_trust_level" ddl:"INT NOT NULL DEFAULT 0"`
	Synonyms       pq.StringArray `gorm:"column:synonyms;type:text[]" db:"synonyms" ddl:"TEXT[]"`
	IUPACName      string         `gorm:"column:iupac_name;type:text;not null;default:''" db:"iupac_name" ddl:"TEXT NOT NULL DEFAULT ''"`

	// TextTaxa are free-text organisms, 'notax' when none is known.
	TextTaxa    pq.StringArray `gorm:"column:text_taxa;type:text[]" db:"text_taxa" ddl:"TEXT[]"`
	TaxonomyIDs pq.StringArray `gorm:"column:taxonomy_ids;type:text[]" db:"taxonomy_ids" ddl:"TEXT[]"`
	Citations   pq.StringArray `gorm:"column:citation_references;type:text[]" db:"citation_references" ddl:"TEXT[]"`

	CAS              string         `gorm:"column:cas_number;type:varchar(64);not null;default:''" db:"cas_number" ddl:"VARCHAR(64) NOT NULL DEFAULT ''"`
	FoundInDatabases pq.StringArray `gorm:"column:found_in_databases;type:text[]" db:"found_in_databases" ddl:"TEXT[]"`

	// XRefs is a JSON list of {source, id, url}.
	XRefs datatypes.JSON `gorm:"column:cross_references;type:jsonb" db:"cross_references" ddl:"JSONB"`

	// CleanXRefs is a JSON list of {source, id_in_source, link_to_source}.
	CleanXRefs datatypes.JSON `gorm:"column:clean_cross_references;type:jsonb" db:"clean_cross_references" ddl:"JSONB"`

	AnnotationLevel int `gorm:"column:annotation_level;not null;default:0" db:"annotation_level" ddl:"INT NOT NULL DEFAULT 0"`

	InChIKey string `gorm:"column:inchikey;type:varchar(27);index" db:"inchikey" ddl:"VARCHAR(27)"`
	InChI    string `gorm:"column:inchi;type:text" db:"inchi" ddl:"TEXT"`
	SMILES   string `gorm:"column:smiles;type:text" db:"smiles" ddl:"TEXT"`

	ChemicalSuperClass string `gorm:"column:chemical_super_class;type:text" db:"chemical_super_class" ddl:"TEXT"`
	ChemicalClass      string `gorm:"column:chemical_class;type:text" db:"chemical_class" ddl:"TEXT"`
	ChemicalSubClass   string `gorm:"column:chemical_sub_class;type:text" db:"chemical_sub_class" ddl:"TEXT"`
	DirectParent       string `gorm:"column:direct_parent_classification;type:text" db:"direct_parent_classification" ddl:"TEXT"`
}

// CurationEvent records which fields of a record a pass changed.
type CurationEvent struct {
	// ID is UUID v5 of run id, pass and accession id, so a replayed chunk
	// does not duplicate events.
	ID string `gorm:"column:id;primaryKey;type:uuid" db:"id" ddl:"UUID PRIMARY KEY"`

	// RunID is UUID v4 generated once per program run.
	RunID string `gorm:"column:run_id;type:uuid;not null;index" db:"run_id" ddl:"UUID NOT NULL"`

	// Pass is the name of the curation pass.
	Pass string `gorm:"column:pass;type:varchar(64);not null" db:"pass" ddl:"VARCHAR(64) NOT NULL"`

	AccessionID string         `gorm:"column:accession_id;type:varchar(32);not null;index" db:"accession_id" ddl:"VARCHAR(32) NOT NULL"`
	Fields      pq.StringArray `gorm:"column:fields;type:text[]" db:"fields" ddl:"TEXT[]"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null;default:now()" db:"created_at" ddl:"TIMESTAMP NOT NULL DEFAULT NOW()"`
}
