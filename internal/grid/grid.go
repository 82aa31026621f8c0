// Package grid keeps the named simulation grids fields are defined on. Fields
// refer to a grid by name and never own it.
package grid

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownGrid = errors.New("grid: unknown grid")

type Grid struct {
	Name       string
	NX, NY, NZ int
	// Active is the number of active cells; zero means every cell is active.
	Active int
}

// Cells is nx*ny*nz.
func (g Grid) Cells() int { return g.NX * g.NY * g.NZ }

// ActiveCells returns Active, or Cells when no active count was given.
func (g Grid) ActiveCells() int {
	if g.Active > 0 {
		return g.Active
	}
	return g.Cells()
}

// Catalog is a read-only set of grids keyed by name.
type Catalog struct {
	grids map[string]Grid
}

// NewCatalog indexes grids by name. Names must be unique and non-empty, and
// the active count may not exceed the cell count.
func NewCatalog(grids ...Grid) (*Catalog, error) {
	c := &Catalog{grids: make(map[string]Grid, len(grids))}
	for _, g := range grids {
		if g.Name == "" {
			return nil, errors.New("grid: empty name")
		}
		if _, dup := c.grids[g.Name]; dup {
			return nil, fmt.Errorf("grid: duplicate grid %q", g.Name)
		}
		if g.Active < 0 || g.Active > g.Cells() {
			return nil, fmt.Errorf("grid %s: active cells %d outside [0, %d]", g.Name, g.Active, g.Cells())
		}
		c.grids[g.Name] = g
	}
	return c, nil
}

func (c *Catalog) Get(name string) (Grid, error) {
	g, ok := c.grids[name]
	if !ok {
		return Grid{}, fmt.Errorf("%w %q", ErrUnknownGrid, name)
	}
	return g, nil
}

// ActiveCells implements field.ActiveCounter.
func (c *Catalog) ActiveCells(name string) (int, error) {
	g, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	return g.ActiveCells(), nil
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.grids))
	for n := range c.grids {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
