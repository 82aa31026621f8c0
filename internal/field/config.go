package field

import (
	"fmt"

	"fieldcfg/internal/transform"
)

// Binding is the transform bound to one stage. Func is not None exactly when
// Name is set.
type Binding struct {
	Name string
	Func transform.Func
}

// Bound reports whether a transform is bound.
func (b Binding) Bound() bool { return b.Name != "" }

// ActiveCounter supplies the active-cell count of a named grid.
type ActiveCounter interface {
	ActiveCells(grid string) (int, error)
}

// Config is the configuration of a single field. It has no internal locking:
// configure it from one goroutine, then share it read-only.
type Config struct {
	key               string
	grid              string
	keepInactiveCells bool

	nx, ny, nz int

	kind Kind

	truncation Truncation
	minValue   float64
	maxValue   float64

	exportFormat FileFormat
	importFormat FileFormat
	outputFile   string

	transforms *transform.Registry
	bindings   [3]Binding
}

// NewConfig returns an empty configuration for key on grid. The registry is
// owned by the config from here on; a nil registry gets the built-in table.
// The grid is referenced by name only.
func NewConfig(key, grid string, keepInactiveCells bool, reg *transform.Registry) *Config {
	if reg == nil {
		reg = transform.NewRegistry()
	}
	return &Config{
		key:               key,
		grid:              grid,
		keepInactiveCells: keepInactiveCells,
		kind:              KindUnknown,
		truncation:        TruncateNone,
		transforms:        reg,
	}
}

func (c *Config) Key() string                     { return c.key }
func (c *Config) Grid() string                    { return c.grid }
func (c *Config) KeepInactiveCells() bool         { return c.keepInactiveCells }
func (c *Config) Kind() Kind                      { return c.kind }
func (c *Config) ExportFormat() FileFormat        { return c.exportFormat }
func (c *Config) ImportFormat() FileFormat        { return c.importFormat }
func (c *Config) OutputFile() string              { return c.outputFile }
func (c *Config) Transforms() *transform.Registry { return c.transforms }

// SetKind is for callers declaring restart or general fields; Update always
// sets KindEclipseParameter.
func (c *Config) SetKind(k Kind) { c.kind = k }

func (c *Config) SetImportFormat(f FileFormat) { c.importFormat = f }

// SetDims overwrites the grid extents. No range checks are made here.
func (c *Config) SetDims(nx, ny, nz int) {
	c.nx, c.ny, c.nz = nx, ny, nz
}

func (c *Config) Dims() (nx, ny, nz int) { return c.nx, c.ny, c.nz }

// DataSize is nx*ny*nz when inactive cells are kept; otherwise the grid's
// active-cell count.
func (c *Config) DataSize(grids ActiveCounter) (int, error) {
	if c.keepInactiveCells {
		return c.nx * c.ny * c.nz, nil
	}
	if grids == nil {
		return 0, fmt.Errorf("field %s: no grid source for active cells of %q", c.key, c.grid)
	}
	n, err := grids.ActiveCells(c.grid)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", c.key, err)
	}
	return n, nil
}

// SetTruncation overwrites mode and both bounds. min <= max is not checked.
func (c *Config) SetTruncation(mode Truncation, minValue, maxValue float64) {
	c.truncation = mode
	c.minValue = minValue
	c.maxValue = maxValue
}

func (c *Config) Truncation() Truncation { return c.truncation }
func (c *Config) TruncationMin() float64 { return c.minValue }
func (c *Config) TruncationMax() float64 { return c.maxValue }

// SetTransform binds name to stage. An empty name clears the stage. A name
// the registry does not know is fatal: it is logged together with every
// valid name and the call panics with a *FatalError.
func (c *Config) SetTransform(stage Stage, name string) {
	idx := c.stageIndex(stage)
	if name == "" {
		c.bindings[idx] = Binding{}
		return
	}
	if !c.transforms.Has(name) {
		fatal(&FatalError{
			Field: c.key,
			Msg:   fmt.Sprintf("%s transform %q is not recognized", stage, name),
			Valid: c.transforms.Names(),
		})
	}
	fn, _ := c.transforms.Lookup(name)
	c.bindings[idx] = Binding{Name: name, Func: fn}
}

// Transform returns the binding of stage.
func (c *Config) Transform(stage Stage) Binding {
	return c.bindings[c.stageIndex(stage)]
}

func (c *Config) InitTransform() Binding   { return c.bindings[StageInit] }
func (c *Config) InputTransform() Binding  { return c.bindings[StageInput] }
func (c *Config) OutputTransform() Binding { return c.bindings[StageOutput] }

func (c *Config) stageIndex(stage Stage) int {
	if stage < StageInit || stage > StageOutput {
		fatal(&FatalError{Field: c.key, Msg: fmt.Sprintf("invalid transform stage %d", int(stage))})
	}
	return int(stage)
}

// Update applies a complete parameter declaration: truncation, export
// format, kind, the three transforms (input, init, output) and the output
// file name. exportFormat is stored as given; InferExportFormat produces a
// sensible default from the output file name.
//
// Nothing is rolled back if a transform name is fatal: truncation, export
// format, kind and any stage resolved before the failing one stay applied.
func (c *Config) Update(mode Truncation, minValue, maxValue float64, exportFormat FileFormat,
	initTransform, inputTransform, outputTransform, outputFile string) {
	c.SetTruncation(mode, minValue, maxValue)
	c.exportFormat = exportFormat
	c.kind = KindEclipseParameter

	c.SetTransform(StageInput, inputTransform)
	c.SetTransform(StageInit, initTransform)
	c.SetTransform(StageOutput, outputTransform)

	c.outputFile = outputFile
}

// IsValid reports whether the configuration is complete enough to use.
//
//	ECLIPSE_PARAMETER: export format must be set
//	ECLIPSE_RESTART:   always valid here, checked further up
//	GENERAL:           export format must be set
//
// Any other kind means the config was never declared and is fatal.
func (c *Config) IsValid() bool {
	switch c.kind {
	case KindEclipseParameter, KindGeneral:
		return c.exportFormat != FormatUndefined
	case KindEclipseRestart:
		return true
	default:
		fatal(&FatalError{Field: c.key, Msg: fmt.Sprintf("internal inconsistency: field kind %s", c.kind)})
		return false
	}
}
