// internal/entity/ecs.go
package entity

import (
	"slices"

	"grid-defense/internal/component"
	"grid-defense/internal/types"
)

// ECS holds every entity population as a component map keyed by id.
type ECS struct {
	NextID types.EntityID

	Positions      map[types.EntityID]*component.Position
	Velocities     map[types.EntityID]*component.Velocity
	PathProgresses map[types.EntityID]*component.PathProgress
	Healths        map[types.EntityID]*component.Health
	Enemies        map[types.EntityID]*component.Enemy
	Towers         map[types.EntityID]*component.Tower
	Combats        map[types.EntityID]*component.Combat
	Projectiles    map[types.EntityID]*component.Projectile
	SlowEffects    map[types.EntityID]*component.SlowEffect
}

func NewECS() *ECS {
	return &ECS{
		NextID:         1,
		Positions:      make(map[types.EntityID]*component.Position),
		Velocities:     make(map[types.EntityID]*component.Velocity),
		PathProgresses: make(map[types.EntityID]*component.PathProgress),
		Healths:        make(map[types.EntityID]*component.Health),
		Enemies:        make(map[types.EntityID]*component.Enemy),
		Towers:         make(map[types.EntityID]*component.Tower),
		Combats:        make(map[types.EntityID]*component.Combat),
		Projectiles:    make(map[types.EntityID]*component.Projectile),
		SlowEffects:    make(map[types.EntityID]*component.SlowEffect),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEnemy deletes every component an enemy entity can carry.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathProgresses, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.SlowEffects, id)
}

// RemoveProjectile deletes a projectile entity.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
}

// RemoveTower deletes every component a tower entity can carry.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
}

// SortedIDs returns the keys of a component map in creation order.
// Go map iteration order is randomized; every system that mutates state
// walks its population through this helper so that ties (targeting,
// simultaneous resolution) break the same way on every run.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
