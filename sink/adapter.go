package sink

import (
	"errors"
	"fmt"

	"fieldcfg/internal/report"
)

var ErrUnknownSink = errors.New("unknown sink")

// Adapter is the common behaviour every report sink exposes.
type Adapter interface {
	Configure(any) error         // driver-specific config ⇒ struct
	Push(r *report.Report) error // deliver one report
	Close() error                // idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSink, name)
}
