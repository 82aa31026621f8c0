// Package field models the configuration of one grid-shaped simulation field
// (PRESSURE, PORO, ...): its geometry, truncation bounds, export format and
// the transforms bound to its three lifecycle stages.
//
// Values flow through a configured field like this:
//
//	geo model  --init transform-->  internal representation
//	forward model  --input transform-->  internal representation
//	internal representation  --output transform--> truncate --> forward model
//
// The init transform runs only when a realization is first initialized, never
// on later dynamic loads. Truncation is applied on export only.
//
// Configuration mistakes that would make a field silently use the wrong
// transform are not returned as errors. They panic with a *FatalError and the
// caller is expected to abort.
package field
