package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ActiveCells(t *testing.T) {
	c, err := NewCatalog(
		Grid{Name: "G", NX: 10, NY: 10, NZ: 5, Active: 400},
		Grid{Name: "FULL", NX: 2, NY: 2, NZ: 2},
	)
	require.NoError(t, err)

	n, err := c.ActiveCells("G")
	require.NoError(t, err)
	assert.Equal(t, 400, n)

	n, err = c.ActiveCells("FULL")
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	_, err = c.ActiveCells("NOPE")
	assert.ErrorIs(t, err, ErrUnknownGrid)
	assert.Equal(t, []string{"FULL", "G"}, c.Names())
}

func TestNewCatalog_Rejects(t *testing.T) {
	_, err := NewCatalog(Grid{Name: "G", NX: 1, NY: 1, NZ: 1}, Grid{Name: "G", NX: 1, NY: 1, NZ: 1})
	assert.Error(t, err)

	_, err = NewCatalog(Grid{NX: 1, NY: 1, NZ: 1})
	assert.Error(t, err)

	_, err = NewCatalog(Grid{Name: "G", NX: 1, NY: 1, NZ: 1, Active: 2})
	assert.Error(t, err)
}
