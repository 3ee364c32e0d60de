// internal/component/status_effect.go
package component

import "grid-defense/internal/types"

// SlowEffect indicates that an entity is slowed.
// Re-application refreshes Until; slows never stack.
type SlowEffect struct {
	Until types.Timestamp
}
