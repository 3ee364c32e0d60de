// internal/system/wave.go
package system

import (
	"log"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
	"grid-defense/pkg/grid"
)

// WaveSystem expands wave definitions into timed spawn queues and emits
// enemies when game time passes their scheduled slot.
type WaveSystem struct {
	ecs             *entity.ECS
	gameMap         *grid.Grid
	eventDispatcher *event.Dispatcher
	treasury        Treasury
	waves           []defs.WaveDefinition
	current         *component.Wave
	activeEnemies   int
	cleared         bool
}

func NewWaveSystem(ecs *entity.ECS, gameMap *grid.Grid, eventDispatcher *event.Dispatcher, treasury Treasury, waves []defs.WaveDefinition) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		gameMap:         gameMap,
		eventDispatcher: eventDispatcher,
		treasury:        treasury,
		waves:           waves,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyLeaked, ws)
	return ws
}

// StartWave expands wave number n into a flat spawn queue. Groups chain
// in declaration order; a group's first entry lands one interval after
// the previous entry (or after now, for the first group). Empty groups
// contribute nothing and do not advance the schedule.
func (s *WaveSystem) StartWave(n int, now types.Timestamp) {
	waveDef := s.waves[n]

	var queue []component.SpawnEntry
	t := now
	for _, group := range waveDef.Groups {
		interval := types.Timestamp(group.Interval.Milliseconds())
		for i := 0; i < group.Count; i++ {
			t += interval
			queue = append(queue, component.SpawnEntry{EnemyID: group.EnemyID, At: t})
		}
	}

	s.current = &component.Wave{
		Number: n,
		Queue:  queue,
		Reward: waveDef.Reward,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
}

// Advance runs the wave completion check: a wave is complete exactly
// when its queue is consumed and nothing it spawned is still alive. On
// completion the reward is credited and the next wave (if any) starts.
func (s *WaveSystem) Advance(now types.Timestamp) {
	if s.current == nil || s.cleared {
		return
	}
	if !s.current.SpawnedAll() || s.activeEnemies > 0 {
		return
	}

	s.treasury.Credit(s.current.Reward)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: s.current.Number})

	next := s.current.Number + 1
	if next < len(s.waves) {
		s.StartWave(next, now)
	} else {
		s.current = nil
		s.cleared = true
	}
}

// SpawnDue consumes every queue entry whose slot has passed, in order.
func (s *WaveSystem) SpawnDue(now types.Timestamp) {
	if s.current == nil {
		return
	}
	for s.current.Cursor < len(s.current.Queue) {
		entry := s.current.Queue[s.current.Cursor]
		if entry.At > now {
			break
		}
		s.spawnEnemy(entry.EnemyID)
		s.current.Cursor++
	}
}

func (s *WaveSystem) spawnEnemy(enemyID string) {
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", enemyID)
		return
	}

	id := s.ecs.NewEntity()
	start := s.gameMap.Spawn()
	s.ecs.Positions[id] = &component.Position{X: float64(start.X), Y: float64(start.Y)}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.PathProgresses[id] = &component.PathProgress{Index: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{DefID: enemyID, Reward: def.Reward}
	s.activeEnemies++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// CampaignCleared reports that the final wave has completed.
func (s *WaveSystem) CampaignCleared() bool {
	return s.cleared
}

// CurrentWaveNumber returns the active wave, or -1 between campaigns.
func (s *WaveSystem) CurrentWaveNumber() int {
	if s.current == nil {
		return -1
	}
	return s.current.Number
}

// ActiveEnemies возвращает число живых врагов текущей волны.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyLeaked:
		s.activeEnemies--
	}
}
