package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBFetchRecordsError
	DBApplyPatchesError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Sources errors
	SourcesConfigError
	SourcesUnknownError
	SourcesFileMissingError
	SourcesFetchError

	// Names rules errors
	RulesParseError

	// Curation errors
	CurateCancelledError
	CurateReadFileError
	CurateAllRowsFailedError
	CurateUnknownPassError

	// Classifier errors
	ClassifierRequestError
	ClassifierStatusError
	ClassifierDecodeError
	ClassifierTimeoutError
	ClassifierCacheError

	// Metrics errors
	MetricsPushError
)
