// Package templates provides embedded YAML templates that are copied to
// the config directory on the first run.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application
// configuration.
//
//go:embed config.yaml
var ConfigYAML string

// RegionsYAML contains the default region reference table used to find
// ISO codes of countries.
//
//go:embed regions.yaml
var RegionsYAML string
