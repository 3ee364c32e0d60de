// internal/system/projectile.go
package system

import (
	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
)

// ProjectileSystem управляет полётом снарядов и нанесением урона.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	treasury        Treasury
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, treasury Treasury) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		treasury:        treasury,
	}
}

// Update advances flight progress by effective time and resolves every
// projectile that arrives. Flight time is fixed per shot regardless of
// distance. Resolved and discarded projectiles never survive the tick.
func (s *ProjectileSystem) Update(deltaMS float64, now types.Timestamp) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		proj.Progress += deltaMS / config.ProjectileFlightMS
		if proj.Progress < 1 {
			continue
		}
		s.hitTarget(proj, now)
		s.ecs.RemoveProjectile(id)
	}
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, now types.Timestamp) {
	health, targetAlive := s.ecs.Healths[proj.TargetID]
	if !targetAlive {
		// Цель уже умерла — снаряд просто пропадает. Это гонка между
		// уроном в полёте и другим источником урона, не ошибка.
		return
	}

	health.Value -= proj.Damage
	if health.Value <= 0 {
		enemy := s.ecs.Enemies[proj.TargetID]
		targetID := proj.TargetID
		s.ecs.RemoveEnemy(targetID)
		s.treasury.Credit(enemy.Reward)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: targetID})
		return
	}

	if proj.Slows {
		// Замедление не стакается, повторное попадание обновляет таймер.
		s.ecs.SlowEffects[proj.TargetID] = &component.SlowEffect{
			Until: now + config.SlowDurationMS,
		}
	}
}
