package field

import (
	"fmt"
	"strings"

	"fieldcfg/internal/logging"
)

// FatalError is raised with panic when a field is configured in a way that
// must stop the process. It is never returned as an ordinary error.
type FatalError struct {
	Field string
	Msg   string
	// Valid lists the accepted values when the failure is an unknown name.
	Valid []string
}

func (e *FatalError) Error() string {
	var b strings.Builder
	b.WriteString("field")
	if e.Field != "" {
		fmt.Fprintf(&b, " %s", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if len(e.Valid) > 0 {
		fmt.Fprintf(&b, " (valid: %s)", strings.Join(e.Valid, ", "))
	}
	return b.String()
}

// AsFatal reports whether a recovered panic value is a *FatalError.
func AsFatal(recovered any) (*FatalError, bool) {
	fe, ok := recovered.(*FatalError)
	return fe, ok
}

func fatal(e *FatalError) {
	args := []any{"field", e.Field}
	if len(e.Valid) > 0 {
		args = append(args, "valid", e.Valid)
	}
	logging.L().Error(e.Msg, args...)
	panic(e)
}
