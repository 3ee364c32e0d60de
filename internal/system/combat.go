// internal/system/combat.go
package system

import (
	"grid-defense/internal/component"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
	"grid-defense/internal/utils"
)

// CombatSystem управляет атакой башен: кулдауны, выбор цели, выстрел.
//
// Firing only touches the tower's cooldown and the projectile list; the
// target itself is never mutated here.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(now types.Timestamp) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if float64(now-combat.LastShotAt) < combat.FireRateMS {
			continue
		}

		targetID := s.findNearestEnemyInRange(pos, combat.Range)
		if targetID == 0 {
			// Нет цели — кулдаун не сбрасывается.
			continue
		}

		combat.LastShotAt = now
		s.createProjectile(id, pos, targetID, combat)
	}
}

// findNearestEnemyInRange picks the closest alive enemy by Euclidean
// distance. Ties break toward the lower id, i.e. creation order.
func (s *CombatSystem) findNearestEnemyInRange(from *component.Position, rangeTiles float64) types.EntityID {
	var best types.EntityID
	bestDist := rangeTiles
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		dist := utils.Dist(from.X, from.Y, pos.X, pos.Y)
		if dist < bestDist || (best == 0 && dist <= bestDist) {
			best = id
			bestDist = dist
		}
	}
	return best
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, from *component.Position, targetID types.EntityID, combat *component.Combat) {
	targetPos := s.ecs.Positions[targetID]

	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID: targetID,
		FromX:    from.X,
		FromY:    from.Y,
		ToX:      targetPos.X,
		ToY:      targetPos.Y,
		Damage:   combat.Damage,
		Slows:    combat.Slows,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: towerID})
}
