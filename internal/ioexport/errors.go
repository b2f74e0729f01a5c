package ioexport

import (
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError creates an error for failures to create the
// SQLite file.
func OpenError(path string, err error) error {
	msg := `Cannot create SQLite file <em>%s</em>

<em>How to fix:</em>
  1. Check the directory exists and is writable
  2. Use --file to choose another location`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open sqlite file %s: %w", path, err),
	}
}

// WriteError creates an error for failures to write tables
// into the SQLite file.
func WriteError(path string, err error) error {
	msg := `Cannot write airports into <em>%s</em>

<em>Possible causes:</em>
  - Disk is full
  - Export was cancelled`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write sqlite file %s: %w", path, err),
	}
}
