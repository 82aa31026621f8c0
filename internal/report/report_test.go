package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"fieldcfg/internal/field"
	"fieldcfg/internal/grid"
)

func fixture(t *testing.T) ([]*field.Config, *grid.Catalog) {
	t.Helper()
	grids, err := grid.NewCatalog(grid.Grid{Name: "G", NX: 2, NY: 2, NZ: 2, Active: 6})
	require.NoError(t, err)

	poro := field.NewConfig("PORO", "G", false, nil)
	poro.SetDims(2, 2, 2)
	poro.Update(field.TruncateMinMax, 0, 0.4, field.FormatEclGRDECL, "LN", "", "EXP", "poro.grdecl")

	broken := field.NewConfig("BROKEN", "G", true, nil)
	broken.SetDims(2, 2, 2)
	broken.Update(field.TruncateNone, 0, 0, field.FormatUndefined, "", "", "", "")

	return []*field.Config{poro, broken}, grids
}

func TestNew_SnapshotsFields(t *testing.T) {
	fields, grids := fixture(t)
	r := New(fields, grids)

	assert.NotEqual(t, uuid.Nil, r.ID)
	require.Len(t, r.Fields, 2)

	poro := r.Fields[0]
	assert.Equal(t, "PORO", poro.Key)
	assert.True(t, poro.Valid)
	assert.Equal(t, 6, poro.DataSize)
	assert.Equal(t, "MIN|MAX", poro.Truncation)
	assert.Equal(t, map[string]string{"init": "LN", "output": "EXP"}, poro.Transforms)

	broken := r.Fields[1]
	assert.False(t, broken.Valid)
	assert.Equal(t, 8, broken.DataSize)
	assert.Empty(t, broken.Transforms)

	assert.False(t, r.Valid())
	assert.Equal(t, []string{"BROKEN"}, r.Invalid())
}

func TestMarshal_DecodesAsStruct(t *testing.T) {
	fields, grids := fixture(t)
	r := New(fields[:1], grids)

	raw, err := r.Marshal()
	require.NoError(t, err)

	var s structpb.Struct
	require.NoError(t, protojson.Unmarshal(raw, &s))
	m := s.AsMap()

	assert.Equal(t, r.ID.String(), m["id"])
	assert.Equal(t, true, m["valid"])
	list, ok := m["fields"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	f := list[0].(map[string]any)
	assert.Equal(t, "PORO", f["key"])
	assert.Equal(t, "ECL_GRDECL_FILE", f["export_format"])
	assert.Equal(t, float64(6), f["data_size"])
	assert.Equal(t, map[string]any{"init": "LN", "output": "EXP"}, f["transforms"])
}
