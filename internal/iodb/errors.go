package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
)

func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database <em>%s</em> exists and user <em>%s</em> can access it
  3. Check ~/.config/npdb/config.yaml or NPDB_DATABASE_* variables`

	vars := []any{host, port, database, user}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("from %s: not connected to database", fn.Name()),
	}
}

func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Cannot check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Cannot verify database state",
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

func EmptyDatabaseError(host, database string) error {
	msg := `Database <em>%s</em> at <em>%s</em> has no natural_products table

<em>How to fix:</em>
  1. Create the schema: <em>npdb create</em>
  2. Load COCONUT records, then run curation passes`

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: []any{database, host},
		Err:  fmt.Errorf("table natural_products is missing in %s", database),
	}
}

func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Cannot list database tables",
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

func ScanTableError(err error) error {
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  "Cannot read table names",
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}

func FetchRecordsError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBFetchRecordsError,
		Msg:  "Cannot read natural products from database",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func ApplyPatchesError(pass string, num int, err error) error {
	return &gn.Error{
		Code: errcode.DBApplyPatchesError,
		Msg:  "Cannot save <em>%d</em> changed records of pass <em>%s</em>",
		Vars: []any{num, pass},
		Err:  fmt.Errorf("failed to apply %d patches of %s: %w", num, pass, err),
	}
}
