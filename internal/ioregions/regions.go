// Package ioregions reads the region reference table from regions.yaml.
package ioregions

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/airports/pkg/ingest"
	"github.com/gnames/airports/pkg/templates"
	"gopkg.in/yaml.v3"
)

// RegionsFile is the layout of regions.yaml.
type RegionsFile struct {
	Regions ingest.Regions `yaml:"regions"`
}

// Load reads and parses the region table at path.
func Load(path string) (ingest.Regions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, RegionsFileError(path,
			fmt.Errorf("failed to read regions file: %w", err))
	}

	res, err := Parse(data)
	if err != nil {
		return nil, RegionsFileError(path, err)
	}
	return res, nil
}

// Default returns the region table embedded into the application.
func Default() (ingest.Regions, error) {
	return Parse([]byte(templates.RegionsYAML))
}

// Parse decodes a region table. Entries without a name or an English
// name cannot match anything and are dropped with a warning. Order of
// the remaining entries is kept.
func Parse(data []byte) (ingest.Regions, error) {
	var file RegionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse regions: %w", err)
	}

	res := make(ingest.Regions, 0, len(file.Regions))
	for i, v := range file.Regions {
		if v.Name == "" || v.EnglishName == "" {
			slog.Warn("Skipping incomplete region entry",
				"position", i+1,
				"name", v.Name,
				"english_name", v.EnglishName,
			)
			continue
		}
		res = append(res, v)
	}
	return res, nil
}
