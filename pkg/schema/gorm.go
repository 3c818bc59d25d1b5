package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&NaturalProduct{},
		&CurationEvent{},
	}
}

// Generators returns all models as DDL generators.
func Generators() []DDLGenerator {
	return []DDLGenerator{
		NaturalProduct{},
		CurationEvent{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// IndexDDL collects extra index statements of all models.
func IndexDDL() []string {
	var res []string
	for _, v := range Generators() {
		res = append(res, v.IndexDDL()...)
	}
	return res
}
