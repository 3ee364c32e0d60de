// internal/component/projectile.go
package component

import "grid-defense/internal/types"

// Projectile представляет летящий снаряд.
//
// TargetID is a weak reference: the enemy may die before the projectile
// arrives, in which case the hit is silently discarded. The destination
// is a copy of the target's position at fire time.
type Projectile struct {
	TargetID     types.EntityID
	FromX, FromY float64
	ToX, ToY     float64
	Progress     float64 // [0,1); >= 1 means the projectile resolves
	Damage       int
	Slows        bool
}
