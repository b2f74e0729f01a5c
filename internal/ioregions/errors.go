package ioregions

import (
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

// RegionsFileError creates an error for when regions.yaml cannot be
// loaded.
func RegionsFileError(path string, err error) error {
	msg := `Cannot load region reference table

<em>File:</em> %s

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to restore the default table on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.LoadRegionsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load regions: %w", err),
	}
}
