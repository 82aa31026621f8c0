// fieldcfg/sink/stdout/driver.go
package stdout

import (
	"fmt"
	"io"
	"os"
	"sync"

	"fieldcfg/internal/report"
	"fieldcfg/sink"
)

/* ────────── config ────────── */
type Config struct {
	// Out defaults to os.Stdout.
	Out io.Writer
	// Summary prints one line per field instead of the encoded report.
	Summary bool
}

/* ────────── driver ────────── */
type driver struct {
	mu  sync.Mutex // serializes writes
	cfg Config
}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	d.cfg = c
	return nil
}

func (d *driver) Push(r *report.Report) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cfg.Out == nil {
		d.cfg.Out = os.Stdout
	}
	if d.cfg.Summary {
		return d.writeSummary(r)
	}
	raw, err := r.Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(d.cfg.Out, "%s\n", raw)
	return err
}

func (d *driver) Close() error { return nil }

/* ────────── internals ────────── */

// must be called with d.mu *held*
func (d *driver) writeSummary(r *report.Report) error {
	for _, f := range r.Fields {
		state := "ok"
		if !f.Valid {
			state = "INVALID"
		}
		if _, err := fmt.Fprintf(d.cfg.Out, "%-12s %-8s %-18s %-24s %s\n",
			f.Key, state, f.Kind, f.ExportFormat, f.OutputFile); err != nil {
			return err
		}
	}
	return nil
}

/* ────────── auto-register ────────── */
func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
