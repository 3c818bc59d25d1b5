package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string
	for i := range t.NumField() {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

func (np NaturalProduct) TableDDL() string {
	return generateDDL(np, np.TableName())
}

// IndexDDL returns indexes GORM tags cannot express: GIN indexes for
// array containment queries.
func (np NaturalProduct) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_natural_products_found_in_databases " +
			"ON natural_products USING GIN (found_in_databases);",
		"CREATE INDEX IF NOT EXISTS idx_natural_products_text_taxa " +
			"ON natural_products USING GIN (text_taxa);",
	}
}

func (np NaturalProduct) TableName() string {
	return "natural_products"
}

func (ce CurationEvent) TableDDL() string {
	return generateDDL(ce, ce.TableName())
}

func (ce CurationEvent) IndexDDL() []string {
	return []string{}
}

func (ce CurationEvent) TableName() string {
	return "curation_events"
}

// DDL returns statements that create all tables and their extra indexes.
func DDL() string {
	var res []string
	for _, v := range Generators() {
		res = append(res, v.TableDDL())
	}
	res = append(res, IndexDDL()...)
	return strings.Join(res, "\n\n") + "\n"
}
