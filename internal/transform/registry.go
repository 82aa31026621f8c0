package transform

import (
	"fmt"
	"io"
	"sort"
)

// Entry is one named transform with a short description for listings.
type Entry struct {
	Name        string
	Func        Func
	Description string
}

var builtins = []Entry{
	{"POW10", Pow10, "y = 10^x"},
	{"TRUNC_POW10", TruncPow10, "y = max(10^x, 0.001)"},
	{"LOG", Ln, "y = ln(x), the natural logarithm"},
	{"LN", Ln, "y = ln(x), the natural logarithm"},
	{"LOG10", Log10, "y = log10(x)"},
	{"EXP", Exp, "y = exp(x)"},
	{"LN0", Ln0, "y = ln(x + 0.000001)"},
	{"EXP0", Exp0, "y = exp(x) - 0.000001"},
}

// Registry maps transform names to Funcs. It is filled at construction and
// never mutated afterwards, so concurrent readers need no locking.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns a registry holding the built-in transform table.
func NewRegistry() *Registry {
	return NewRegistryFrom(builtins...)
}

// NewRegistryFrom builds a registry from entries. A later entry with the same
// name replaces an earlier one; entries with an empty name are skipped.
func NewRegistryFrom(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		r.entries[e.Name] = e
	}
	return r
}

// Has reports whether name is registered. Names are case-sensitive.
func (r *Registry) Has(name string) bool {
	if r == nil || name == "" {
		return false
	}
	_, ok := r.entries[name]
	return ok
}

// Lookup returns the Func registered under name. Callers check Has first;
// an unknown name yields (None, false).
func (r *Registry) Lookup(name string) (Func, bool) {
	if r == nil {
		return None, false
	}
	e, ok := r.entries[name]
	return e.Func, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a sorted snapshot of the registry.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, r.entries[n])
	}
	return out
}

// Fprint writes the available transforms, one per line.
func (r *Registry) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Available transformation functions:"); err != nil {
		return err
	}
	for _, e := range r.Entries() {
		if _, err := fmt.Fprintf(w, "  %-12s %s\n", e.Name, e.Description); err != nil {
			return err
		}
	}
	return nil
}
