package iodb

import (
	"testing"

	"github.com/gnames/npdb/pkg/record"
	"github.com/gnames/npdb/pkg/schema"
	"github.com/gnames/npdb/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSQL(t *testing.T) {
	q := updateSQL([]string{record.FieldName, record.FieldSynonyms})
	assert.Equal(t,
		"UPDATE natural_products SET name = $2, synonyms = $3 "+
			"WHERE accession_id = $1",
		q,
	)
}

func TestEventID(t *testing.T) {
	ev := store.Event{RunID: "run1", Pass: "names"}
	id1 := EventID(ev, "CNP0000001")
	assert.Len(t, id1, 36)
	assert.Equal(t, id1, EventID(ev, "CNP0000001"))
	assert.NotEqual(t, id1, EventID(ev, "CNP0000002"))

	ev.RunID = "run2"
	assert.NotEqual(t, id1, EventID(ev, "CNP0000001"))
}

func TestFieldValues(t *testing.T) {
	row, err := schema.FromRecord(&record.NaturalProduct{
		AccessionID: "CNP1",
		Name:        "Quercetin",
		Synonyms:    []string{"Sophoretin"},
	})
	require.NoError(t, err)

	vals := fieldValues(row)
	fields := []string{
		record.FieldName, record.FieldNameTrustLevel, record.FieldSynonyms,
		record.FieldIUPACName, record.FieldTextTaxa, record.FieldTaxonomyIDs,
		record.FieldCitations, record.FieldCAS, record.FieldFoundInDatabases,
		record.FieldXRefs, record.FieldCleanXRefs, record.FieldAnnotationLevel,
		record.FieldChemicalSuperClass, record.FieldChemicalClass,
		record.FieldChemicalSubClass, record.FieldDirectParent,
	}
	assert.Len(t, vals, len(fields))
	for _, f := range fields {
		assert.Contains(t, vals, f)
	}
	assert.Equal(t, "Quercetin", vals[record.FieldName])
	assert.Equal(t, []string{"Sophoretin"}, vals[record.FieldSynonyms])
}
