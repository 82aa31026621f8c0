package field

import (
	"fmt"
	"strings"
)

// Kind is the declared role of a field.
type Kind int

const (
	KindUnknown Kind = iota
	KindEclipseRestart
	KindEclipseParameter
	KindGeneral
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "UNKNOWN_FIELD_TYPE"
	case KindEclipseRestart:
		return "ECLIPSE_RESTART"
	case KindEclipseParameter:
		return "ECLIPSE_PARAMETER"
	case KindGeneral:
		return "GENERAL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the enum names above as well as the short declaration
// forms parameter, dynamic and general. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ECLIPSE_PARAMETER", "PARAMETER", "":
		return KindEclipseParameter, nil
	case "ECLIPSE_RESTART", "DYNAMIC", "RESTART":
		return KindEclipseRestart, nil
	case "GENERAL":
		return KindGeneral, nil
	default:
		return KindUnknown, fmt.Errorf("field: unknown kind %q", s)
	}
}
