package ioregions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/airports/internal/ioregions"
	"github.com/gnames/airports/pkg/errcode"
	"github.com/gnames/airports/pkg/ingest"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `
regions:
  - name: en-US
    english_name: English (United States)
  - name: ""
    english_name: Nameless
  - name: fr-FR
    english_name: French (France)
  - name: de-DE
`
	res, err := ioregions.Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, ingest.Regions{
		{Name: "en-US", EnglishName: "English (United States)"},
		{Name: "fr-FR", EnglishName: "French (France)"},
	}, res)

	_, err = ioregions.Parse([]byte("regions: [unclosed"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	res, err := ioregions.Default()
	require.NoError(t, err)
	assert.Greater(t, len(res), 100)

	tests := []struct {
		country    string
		status     ingest.RegionStatus
		two, three string
	}{
		{"United States", ingest.RegionFound, "US", "USA"},
		{"Papua New Guinea", ingest.RegionFound, "PG", "PNG"},
		{"Germany", ingest.RegionFound, "DE", "DEU"},
		{"Montenegro", ingest.RegionFound, "ME", "MNE"},
		{"Latin America", ingest.RegionDerivationFailed, "", ""},
		{"Atlantis", ingest.RegionNoMatch, "", ""},
	}
	for _, v := range tests {
		m := res.Lookup(v.country)
		assert.Equal(t, v.status, m.Status, v.country)
		assert.Equal(t, v.two, m.TwoLetter, v.country)
		assert.Equal(t, v.three, m.ThreeLetter, v.country)
	}
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	content := "regions:\n  - name: it-IT\n    english_name: Italian (Italy)\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := ioregions.Load(path)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "it-IT", res[0].Name)

	_, err = ioregions.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.LoadRegionsError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, os.ErrNotExist)
}
