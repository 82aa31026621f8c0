package spec

// GridSpec declares one grid. Active may be left out when every cell is
// active.
type GridSpec struct {
	Name   string `yaml:"name"`
	NX     int    `yaml:"nx"`
	NY     int    `yaml:"ny"`
	NZ     int    `yaml:"nz"`
	Active int    `yaml:"active"`
}

type FieldSpec struct {
	Key               string `yaml:"key"`
	Grid              string `yaml:"grid"`
	Type              string `yaml:"type"` // parameter (default), dynamic, general
	KeepInactiveCells bool   `yaml:"keep_inactive_cells"`

	OutputFile   string `yaml:"output_file"`
	ExportFormat string `yaml:"export_format"` // inferred from output_file when empty
	ImportFormat string `yaml:"import_format"`

	InitTransform   string `yaml:"init_transform"`
	InputTransform  string `yaml:"input_transform"`
	OutputTransform string `yaml:"output_transform"`

	// A bound is truncated only when present.
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	// GridsFile points at a separate YAML list of grids, relative to this file.
	GridsFile string     `yaml:"grids_file"`
	Grids     []GridSpec `yaml:"grids"`

	Fields []FieldSpec `yaml:"fields"`
}
