package ioartifact

import (
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

func ArtifactReadError(path string, err error) error {
	msg := `Cannot read normalized data from <em>%s</em>

Run <em>airports load --force</em> to rebuild it from raw input.`
	return &gn.Error{
		Code: errcode.LoadArtifactReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read artifact %s: %w", path, err),
	}
}

func ArtifactWriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadArtifactWriteError,
		Msg:  "Cannot write normalized data to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write artifact %s: %w", path, err),
	}
}
