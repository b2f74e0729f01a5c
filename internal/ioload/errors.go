package ioload

import (
	"fmt"

	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/gn"
)

func InputNotFoundError(path string, err error) error {
	msg := `Raw airports file <em>%s</em> does not exist

Set <em>load.input_dir</em> and <em>load.airports_file</em> in config.yaml
or use <em>AIRPORTS_LOAD_INPUT_DIR</em> environment variable.`
	return &gn.Error{
		Code: errcode.LoadInputNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("airports input %s: %w", path, err),
	}
}

func InputReadError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadInputReadError,
		Msg:  "Cannot read raw airports file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read airports input %s: %w", path, err),
	}
}

func TimeZonesError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadTimeZonesError,
		Msg:  "Cannot load airport timezones from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot load timezones %s: %w", path, err),
	}
}

func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  "Load was cancelled, nothing was written",
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
