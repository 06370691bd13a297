// Package kernel provides the core domain primitives shared across the
// pizzaria domain model.
//
// It includes:
//   - UUID: a value object for aggregate identities with validation and
//     comparison behaviour
//   - Coordinates: a validated WGS84 latitude/longitude pair used by the
//     delivery quoting flow
//
// The primitives are immutable and thread-safe, and enforce their invariants
// at construction time so the rest of the domain can rely on them being in a
// valid state.
package kernel
