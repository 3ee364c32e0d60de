// internal/system/movement.go
package system

import (
	"grid-defense/internal/config"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
	"grid-defense/internal/utils"
	"grid-defense/pkg/grid"
)

// MovementSystem advances every enemy along the fixed route and detects
// goal arrivals. Enemies never interact with each other, so processing
// order cannot change the outcome; the sorted walk only keeps event
// order reproducible.
type MovementSystem struct {
	ecs             *entity.ECS
	path            []grid.Point
	eventDispatcher *event.Dispatcher
	lives           LifeBank
}

func NewMovementSystem(ecs *entity.ECS, path []grid.Point, eventDispatcher *event.Dispatcher, lives LifeBank) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		path:            path,
		eventDispatcher: eventDispatcher,
		lives:           lives,
	}
}

func (s *MovementSystem) Update(deltaMS float64, now types.Timestamp) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		progress := s.ecs.PathProgresses[id]

		// Враг на последней точке пути — это прорыв к базе.
		if progress.Index >= len(s.path)-1 {
			s.ecs.RemoveEnemy(id)
			s.lives.LoseLife()
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
			continue
		}

		speed := vel.Speed
		if slow, isSlowed := s.ecs.SlowEffects[id]; isSlowed {
			if now < slow.Until {
				speed *= config.SlowFactor
			} else {
				delete(s.ecs.SlowEffects, id)
			}
		}

		budget := speed * deltaMS / 1000.0
		target := s.path[progress.Index+1]
		tx, ty := float64(target.X), float64(target.Y)
		dist := utils.Dist(pos.X, pos.Y, tx, ty)

		if dist <= budget {
			pos.X = tx
			pos.Y = ty
			progress.Index++
		} else {
			pos.X += (tx - pos.X) / dist * budget
			pos.Y += (ty - pos.Y) / dist * budget
		}
	}
}
