package field

import "strings"

// Truncation is a set of bound flags. A bound is only meaningful when its
// flag is set.
type Truncation uint8

const (
	TruncateMin Truncation = 1 << iota
	TruncateMax

	TruncateNone   Truncation = 0
	TruncateMinMax            = TruncateMin | TruncateMax
)

// Has reports whether every flag in t2 is set in t.
func (t Truncation) Has(t2 Truncation) bool { return t&t2 == t2 }

func (t Truncation) String() string {
	if t == TruncateNone {
		return "NONE"
	}
	var parts []string
	if t.Has(TruncateMin) {
		parts = append(parts, "MIN")
	}
	if t.Has(TruncateMax) {
		parts = append(parts, "MAX")
	}
	if rest := t &^ TruncateMinMax; rest != 0 {
		parts = append(parts, "?")
	}
	return strings.Join(parts, "|")
}
