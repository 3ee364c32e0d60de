// internal/component/health.go
package component

// Health keeps 0 < Value <= Max while the entity is alive.
type Health struct {
	Value int
	Max   int
}
