// internal/component/tower.go
package component

import "grid-defense/pkg/grid"

// Tower occupies exactly one tile. It is created and destroyed only by
// player commands, never by the simulation itself.
type Tower struct {
	DefID string     // ID из библиотеки башен
	Cell  grid.Point // Тайл, на котором стоит башня
	Level int
}
