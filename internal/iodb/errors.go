package iodb

import (
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Could not connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database <em>%s</em> does not exist
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running: <em>pg_isready -h %s -p %d</em>
  2. Verify database exists: <em>psql -h %s -U %s -l</em>
  3. Check database section of <em>~/.config/airports/config.yaml</em>`

	vars := []any{database, host, port, host, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Could not verify database state",
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// TableExistsCheckError is returned when checking for a table fails.
func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Could not check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// NotConnectedError is returned when a query runs before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}
