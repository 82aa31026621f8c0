package field

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat is the on-disk format a field is exported to or imported from.
type FileFormat int

const (
	FormatUndefined FileFormat = iota
	FormatRMSRoff
	FormatEclKW
	FormatEclKWActiveCells
	FormatEclKWAllCells
	FormatEclGRDECL
	FormatEclFile
	// FormatNull marks a field without an output file. It is distinct from
	// FormatUndefined, which means nobody set a format at all.
	FormatNull
)

var formatNames = map[FileFormat]string{
	FormatUndefined:        "UNDEFINED_FORMAT",
	FormatRMSRoff:          "RMS_ROFF_FILE",
	FormatEclKW:            "ECL_KW_FILE",
	FormatEclKWActiveCells: "ECL_KW_FILE_ACTIVE_CELLS",
	FormatEclKWAllCells:    "ECL_KW_FILE_ALL_CELLS",
	FormatEclGRDECL:        "ECL_GRDECL_FILE",
	FormatEclFile:          "ECL_FILE",
	FormatNull:             "FILE_FORMAT_NULL",
}

func (f FileFormat) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("FileFormat(%d)", int(f))
}

// ParseFileFormat maps an enum name such as "ECL_GRDECL_FILE" back to its
// value. Matching is case-insensitive.
func ParseFileFormat(s string) (FileFormat, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == want {
			return f, nil
		}
	}
	return FormatUndefined, fmt.Errorf("field: unknown file format %q", s)
}

// InferExportFormat guesses the export format from an output file name.
// No file name means FormatNull; .grdecl and .roff (any case) select their
// formats; everything else, including names without an extension, is
// exported as an all-cells keyword file.
func InferExportFormat(filename string) FileFormat {
	if filename == "" {
		return FormatNull
	}
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch strings.ToUpper(ext) {
	case "GRDECL":
		return FormatEclGRDECL
	case "ROFF":
		return FormatRMSRoff
	default:
		return FormatEclKWAllCells
	}
}
