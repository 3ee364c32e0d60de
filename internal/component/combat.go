// internal/component/combat.go
package component

import "grid-defense/internal/types"

// Combat holds a tower's firing parameters, copied from its definition
// at placement time. LastShotAt is the only mutable field.
type Combat struct {
	Damage     int
	Range      float64 // радиус в тайлах
	FireRateMS float64 // кулдаун между выстрелами
	LastShotAt types.Timestamp
	Slows      bool
}
