package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFieldsFile_ParsesFieldsAndRelativeGrids(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "grids.yml", `- { name: G, nx: 10, ny: 10, nz: 5, active: 400 }
`)
	path := writeFile(t, dir, "fields.yml", `schema_version: v1
grids_file: grids.yml
grids:
  - { name: H, nx: 2, ny: 2, nz: 2 }
fields:
  - key: PORO
    grid: G
    output_file: poro.grdecl
    init_transform: LN
    output_transform: EXP
    min: 0.0
    max: 0.4
  - key: PRESSURE
    grid: H
    type: dynamic
    keep_inactive_cells: true
`)

	cfg, err := LoadFieldsFile(path)
	require.NoError(t, err)

	require.Len(t, cfg.Grids, 2)
	assert.Equal(t, "H", cfg.Grids[0].Name)
	assert.Equal(t, 400, cfg.Grids[1].Active)

	require.Len(t, cfg.Fields, 2)
	poro := cfg.Fields[0]
	assert.Equal(t, "LN", poro.InitTransform)
	assert.Empty(t, poro.InputTransform)
	require.NotNil(t, poro.Min)
	require.NotNil(t, poro.Max)
	assert.Equal(t, 0.0, *poro.Min)
	assert.Equal(t, 0.4, *poro.Max)

	pressure := cfg.Fields[1]
	assert.Nil(t, pressure.Min)
	assert.Equal(t, "dynamic", pressure.Type)
	assert.True(t, pressure.KeepInactiveCells)
}

func TestLoadFieldsFile_DefaultsSchema(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fields.yml", "fields: []\n")
	cfg, err := LoadFieldsFile(path)
	require.NoError(t, err)
	assert.Equal(t, SupportedSchema, cfg.SchemaVersion)
}

func TestLoadFieldsFile_InvalidSchema(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fields.yml", "schema_version: v999\nfields: []\n")
	_, err := LoadFieldsFile(path)
	assert.Error(t, err)
}

func TestLoadFieldsFile_MissingGridsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fields.yml", "grids_file: nope.yml\n")
	_, err := LoadFieldsFile(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
