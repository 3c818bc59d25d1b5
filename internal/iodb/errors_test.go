package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "coconut", "postgres",
		originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 4)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestErrorCodes(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"table exists", TableExistsCheckError("t", cause), errcode.DBTableCheckError},
		{"tables", TableCheckError(cause), errcode.DBTableCheckError},
		{"empty", EmptyDatabaseError("h", "d"), errcode.DBEmptyDatabaseError},
		{"query", QueryTablesError(cause), errcode.DBQueryTablesError},
		{"scan", ScanTableError(cause), errcode.DBScanTableError},
		{"drop", DropTableError("t", cause), errcode.DBDropTableError},
		{"fetch", FetchRecordsError(cause), errcode.DBFetchRecordsError},
		{"apply", ApplyPatchesError("names", 3, cause), errcode.DBApplyPatchesError},
	}

	for _, v := range tests {
		var gnErr *gn.Error
		require.ErrorAs(t, v.err, &gnErr, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
	}
}
