package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatCmd(t *testing.T) {
	out, err := run(t, "format", "poro.GRDECL", "x.roff", "permx")
	require.NoError(t, err)
	assert.Contains(t, out, "poro.GRDECL\tECL_GRDECL_FILE")
	assert.Contains(t, out, "x.roff\tRMS_ROFF_FILE")
	assert.Contains(t, out, "permx\tECL_KW_FILE_ALL_CELLS")
}

func TestTransformsCmd(t *testing.T) {
	out, err := run(t, "transforms")
	require.NoError(t, err)
	assert.Contains(t, out, "TRUNC_POW10")
	assert.Contains(t, out, "LN0")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	fields := filepath.Join(dir, "fields.yml")
	require.NoError(t, os.WriteFile(fields, []byte(`grids: [{ name: G, nx: 2, ny: 2, nz: 2 }]
fields:
  - { key: PORO, grid: G, output_file: poro.grdecl, init_transform: LN }
`), 0o644))

	out, err := run(t, "check", "--config", filepath.Join(dir, "none.yml"), "--fields", fields)
	require.NoError(t, err)
	assert.Contains(t, out, "PORO")
	assert.Contains(t, out, "ok")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte(`grids: [{ name: G, nx: 2, ny: 2, nz: 2 }]
fields:
  - { key: PERMX, grid: G, export_format: UNDEFINED_FORMAT }
`), 0o644))
	_, err = run(t, "check", "--config", filepath.Join(dir, "none.yml"), "--fields", bad)
	assert.ErrorIs(t, err, errInvalidFields)
}
