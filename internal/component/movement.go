// internal/component/movement.go
package component

// Position — позиция сущности в координатах тайлов (не пикселей).
type Position struct {
	X, Y float64
}

// Velocity — базовая скорость в тайлах в секунду.
type Velocity struct {
	Speed float64
}

// PathProgress marks how far along the walking route an enemy is.
// The enemy sits on the segment between path[Index] and path[Index+1].
type PathProgress struct {
	Index int
}
