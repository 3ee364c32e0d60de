// internal/types/types.go
package types

// EntityID identifies a single entity in the ECS. IDs are handed out
// monotonically and never reused, so they double as creation order.
type EntityID uint64

// Timestamp is a point on the simulation clock, in milliseconds.
// The engine keeps two clocks: wall time (what the driver passes in)
// and game time (wall time scaled by the speed multiplier).
type Timestamp float64
