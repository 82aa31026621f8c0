package field

import "fmt"

// Stage is one of the three points at which a transform may run.
type Stage int

const (
	// StageInit runs once when a realization is initialized.
	StageInit Stage = iota
	// StageInput runs every time dynamic values are loaded from the forward model.
	StageInput
	// StageOutput runs every time values are exported, before truncation.
	StageOutput
)

// Stages lists every stage in declaration order.
var Stages = []Stage{StageInit, StageInput, StageOutput}

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageInput:
		return "input"
	case StageOutput:
		return "output"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}
