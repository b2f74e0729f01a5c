package iopublish

import (
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when publish
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Publish operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TruncateError creates an error for failures to empty
// airport tables before copying.
func TruncateError(err error) error {
	msg := `Cannot remove old airport data

<em>Possible causes:</em>
  - Airport tables do not exist yet
  - Insufficient database permissions

<em>How to fix:</em>
  1. Run publish again, it creates missing tables
  2. Check database user has TRUNCATE permissions`

	return &gn.Error{
		Code: errcode.PublishTruncateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to truncate tables: %w", err),
	}
}

// CopyError creates an error for bulk insert failures.
func CopyError(table string, err error) error {
	msg := `Cannot copy rows into <em>%s</em>

<em>Possible causes:</em>
  - Table schema differs from the airport schema
  - Database connection was lost

<em>How to fix:</em>
  1. Drop the table and run publish again
  2. Check database logs for details`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.PublishCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to copy rows into %s: %w", table, err),
	}
}

// AnalyzeError creates an error for failures to update table
// statistics after copying.
func AnalyzeError(err error) error {
	msg := `Cannot update statistics of airport tables

<em>How to fix:</em>
  1. Run ANALYZE manually
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.PublishAnalyzeError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to analyze tables: %w", err),
	}
}
