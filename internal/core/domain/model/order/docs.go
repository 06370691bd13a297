// Package order implements the order aggregate and its lifecycle state
// machine. The aggregate owns its line items exclusively, recomputes totals
// on every item mutation, and guards status changes against an explicitly
// enumerated transition table. Per-status timestamps are stamped exactly
// once, and cancellation is modelled as a terminal status rather than a
// deletion so the order history always survives.
package order
