// Package ioartifact keeps the normalized model as pretty JSON files, one
// file per collection.
package ioartifact

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/airports/pkg/artifact"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
)

type store struct {
	dir string
	enc gnfmt.Encoder
}

// New creates a JSON artifact store in dir.
func New(dir string) artifact.Store {
	return &store{
		dir: dir,
		enc: gnfmt.GNjson{Pretty: true},
	}
}

// Path returns the file path of a collection.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

func (s *store) Exists() (bool, error) {
	for _, name := range artifact.Names {
		path := Path(s.dir, name)
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		if err != nil {
			return false, ArtifactReadError(path, err)
		}
	}
	return true, nil
}

func (s *store) Read() (*artifact.Collections, error) {
	var res artifact.Collections
	targets := map[string]any{
		artifact.AirportsName:  &res.Airports,
		artifact.CitiesName:    &res.Cities,
		artifact.CountriesName: &res.Countries,
		artifact.LocationsName: &res.Locations,
	}

	for _, name := range artifact.Names {
		path := Path(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ArtifactReadError(path, err)
		}
		if err = s.enc.Decode(data, targets[name]); err != nil {
			return nil, ArtifactReadError(path, err)
		}
	}

	slog.Info("Artifacts read",
		"dir", s.dir,
		"airports", len(res.Airports),
		"cities", len(res.Cities),
		"countries", len(res.Countries),
		"locations", len(res.Locations),
	)
	return &res, nil
}

func (s *store) Write(c *artifact.Collections) error {
	sources := map[string]any{
		artifact.AirportsName:  c.Airports,
		artifact.CitiesName:    c.Cities,
		artifact.CountriesName: c.Countries,
		artifact.LocationsName: c.Locations,
	}

	// all collections are encoded before anything touches the disk
	data := make(map[string][]byte, len(sources))
	for _, name := range artifact.Names {
		bs, err := s.enc.Encode(sources[name])
		if err != nil {
			return ArtifactWriteError(Path(s.dir, name), err)
		}
		data[name] = bs
	}

	if err := gnsys.MakeDir(s.dir); err != nil {
		return ArtifactWriteError(s.dir, err)
	}

	for _, name := range artifact.Names {
		path := Path(s.dir, name)
		if err := writeFile(path, data[name]); err != nil {
			return ArtifactWriteError(path, err)
		}
		slog.Debug("Artifact written", "path", path, "bytes", len(data[name]))
	}
	return nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers never see a half written file.
func writeFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0644)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
	}
	return err
}
