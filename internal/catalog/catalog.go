// Package catalog compiles a fields declaration file into configured fields.
// Every field gets its own transform registry and is configured through
// field.Config.Update, so an unknown transform name aborts compilation with a
// *field.FatalError panic exactly as it would for a hand-built config.
package catalog

import (
	"errors"
	"fmt"

	"fieldcfg/internal/config"
	"fieldcfg/internal/field"
	"fieldcfg/internal/grid"
	"fieldcfg/internal/logging"
	"fieldcfg/internal/spec"
	"fieldcfg/internal/transform"
)

type Catalog struct {
	grids  *grid.Catalog
	fields map[string]*field.Config
	order  []string
}

func Compile(path string) (*Catalog, error) {
	f, err := config.LoadFieldsFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

func Build(f spec.File) (*Catalog, error) {
	gs := make([]grid.Grid, 0, len(f.Grids))
	for _, g := range f.Grids {
		gs = append(gs, grid.Grid{Name: g.Name, NX: g.NX, NY: g.NY, NZ: g.NZ, Active: g.Active})
	}
	grids, err := grid.NewCatalog(gs...)
	if err != nil {
		return nil, err
	}

	c := &Catalog{grids: grids, fields: make(map[string]*field.Config, len(f.Fields))}
	for _, fs := range f.Fields {
		if _, dup := c.fields[fs.Key]; dup {
			return nil, fmt.Errorf("field %s: declared twice", fs.Key)
		}
		cfg, err := buildField(fs, grids)
		if err != nil {
			return nil, err
		}
		c.fields[fs.Key] = cfg
		c.order = append(c.order, fs.Key)
		logging.L().Debug("field configured",
			"field", cfg.Key(), "grid", cfg.Grid(), "kind", cfg.Kind().String(),
			"export_format", cfg.ExportFormat().String(), "truncation", cfg.Truncation().String())
	}
	return c, nil
}

func buildField(fs spec.FieldSpec, grids *grid.Catalog) (*field.Config, error) {
	if fs.Key == "" {
		return nil, errors.New("field: empty key")
	}
	g, err := grids.Get(fs.Grid)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fs.Key, err)
	}
	kind, err := field.ParseKind(fs.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fs.Key, err)
	}

	exportFormat := field.InferExportFormat(fs.OutputFile)
	if fs.ExportFormat != "" {
		if exportFormat, err = field.ParseFileFormat(fs.ExportFormat); err != nil {
			return nil, fmt.Errorf("field %s: %w", fs.Key, err)
		}
	}

	var (
		mode   field.Truncation
		lo, hi float64
	)
	if fs.Min != nil {
		mode |= field.TruncateMin
		lo = *fs.Min
	}
	if fs.Max != nil {
		mode |= field.TruncateMax
		hi = *fs.Max
	}

	cfg := field.NewConfig(fs.Key, fs.Grid, fs.KeepInactiveCells, transform.NewRegistry())
	cfg.SetDims(g.NX, g.NY, g.NZ)
	if fs.ImportFormat != "" {
		imp, err := field.ParseFileFormat(fs.ImportFormat)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fs.Key, err)
		}
		cfg.SetImportFormat(imp)
	}

	cfg.Update(mode, lo, hi, exportFormat, fs.InitTransform, fs.InputTransform, fs.OutputTransform, fs.OutputFile)
	if kind != field.KindEclipseParameter {
		cfg.SetKind(kind)
	}
	return cfg, nil
}

// Field returns the config declared under key.
func (c *Catalog) Field(key string) (*field.Config, bool) {
	cfg, ok := c.fields[key]
	return cfg, ok
}

// Fields returns every config in declaration order.
func (c *Catalog) Fields() []*field.Config {
	out := make([]*field.Config, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.fields[k])
	}
	return out
}

func (c *Catalog) Grids() *grid.Catalog { return c.grids }

// Invalid returns the keys of fields whose configuration is incomplete.
func (c *Catalog) Invalid() []string {
	var keys []string
	for _, k := range c.order {
		if !c.fields[k].IsValid() {
			keys = append(keys, k)
		}
	}
	return keys
}
