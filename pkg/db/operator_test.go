package db_test

import (
	"testing"

	"github.com/gnames/npdb/internal/iodb"
	"github.com/gnames/npdb/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestPgxOperatorImplementsInterface(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.Nil(t, op.Pool())
}
