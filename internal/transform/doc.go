// Package transform holds the named value transforms a field can apply at
// its init, input and output stages. A Registry resolves a transform name to
// a Func once, at configuration time; the Func is then stored by value and
// applied on the per-value path without further lookups.
package transform
