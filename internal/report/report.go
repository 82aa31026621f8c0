// Package report summarizes the validation state of a set of configured
// fields. Reports are encoded as a protobuf Struct in JSON form so any sink
// can carry them without a dedicated schema.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"fieldcfg/internal/field"
	"fieldcfg/internal/logging"
)

type FieldStatus struct {
	Key          string
	Grid         string
	Kind         string
	Valid        bool
	ExportFormat string
	ImportFormat string
	OutputFile   string
	Truncation   string
	Min, Max     float64
	DataSize     int
	// Transforms maps a stage name to the bound transform; unbound stages
	// are left out.
	Transforms map[string]string
}

type Report struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Fields    []FieldStatus
}

// New snapshots fields. grids resolves active-cell counts; a field whose
// data size cannot be resolved is reported with size 0.
func New(fields []*field.Config, grids field.ActiveCounter) *Report {
	r := &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Fields:    make([]FieldStatus, 0, len(fields)),
	}
	for _, c := range fields {
		size, err := c.DataSize(grids)
		if err != nil {
			logging.L().Warn("report: data size unavailable", "field", c.Key(), "err", err)
		}
		st := FieldStatus{
			Key:          c.Key(),
			Grid:         c.Grid(),
			Kind:         c.Kind().String(),
			Valid:        c.IsValid(),
			ExportFormat: c.ExportFormat().String(),
			ImportFormat: c.ImportFormat().String(),
			OutputFile:   c.OutputFile(),
			Truncation:   c.Truncation().String(),
			Min:          c.TruncationMin(),
			Max:          c.TruncationMax(),
			DataSize:     size,
			Transforms:   map[string]string{},
		}
		for _, s := range field.Stages {
			if b := c.Transform(s); b.Bound() {
				st.Transforms[s.String()] = b.Name
			}
		}
		r.Fields = append(r.Fields, st)
	}
	return r
}

// Valid reports whether every field in the report is valid.
func (r *Report) Valid() bool {
	for _, f := range r.Fields {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Invalid returns the keys of invalid fields.
func (r *Report) Invalid() []string {
	var keys []string
	for _, f := range r.Fields {
		if !f.Valid {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func (r *Report) Proto() (*structpb.Struct, error) {
	fields := make([]any, 0, len(r.Fields))
	for _, f := range r.Fields {
		tr := make(map[string]any, len(f.Transforms))
		for k, v := range f.Transforms {
			tr[k] = v
		}
		fields = append(fields, map[string]any{
			"key":           f.Key,
			"grid":          f.Grid,
			"kind":          f.Kind,
			"valid":         f.Valid,
			"export_format": f.ExportFormat,
			"import_format": f.ImportFormat,
			"output_file":   f.OutputFile,
			"truncation":    f.Truncation,
			"min":           f.Min,
			"max":           f.Max,
			"data_size":     f.DataSize,
			"transforms":    tr,
		})
	}
	s, err := structpb.NewStruct(map[string]any{
		"id":         r.ID.String(),
		"created_at": r.CreatedAt.Format(time.RFC3339Nano),
		"valid":      r.Valid(),
		"fields":     fields,
	})
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", r.ID, err)
	}
	return s, nil
}

// Marshal encodes the report as protojson.
func (r *Report) Marshal() ([]byte, error) {
	s, err := r.Proto()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}
