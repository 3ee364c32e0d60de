// internal/engine/game.go
package engine

import (
	"fmt"

	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/system"
	"grid-defense/internal/types"
	"grid-defense/internal/utils"
	"grid-defense/pkg/grid"
)

// Phase is the terminal state machine: playing -> won | lost, both final.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "playing"
	}
}

// Game is the aggregate root of one simulation run. The driver calls
// Update once per frame with the current wall-clock time; everything
// else happens inside that call, in a fixed order.
type Game struct {
	Grid    *grid.Grid
	ECS     *entity.ECS
	Economy *Ledger
	Level   defs.LevelDefinition

	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	Phase    Phase
	GameTime types.Timestamp // effective ms; frozen while paused
	Speed    float64         // 0 = paused

	lastTickAt types.Timestamp // wall ms of the previous Update; < 0 until the first
	towers     map[grid.Point]types.EntityID
}

// NewGame builds the initial state: map, route, economy, wave 0 queue.
// A level without an explicit path gets one generated from the seed.
func NewGame(level defs.LevelDefinition, seed int64) (*Game, error) {
	if len(level.Waves) == 0 {
		return nil, fmt.Errorf("level has no waves")
	}

	rng := utils.NewPRNGService(seed)
	path := level.Path
	if path == nil {
		if level.GridSize < 3 {
			return nil, fmt.Errorf("grid size %d is too small to carve a route", level.GridSize)
		}
		path = grid.GeneratePath(level.GridSize, rng)
	}
	gameMap, err := grid.New(level.GridSize, path)
	if err != nil {
		return nil, fmt.Errorf("invalid level map: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	economy := NewLedger(level.StartingMoney, level.StartingLives)

	g := &Game{
		Grid:            gameMap,
		ECS:             ecs,
		Economy:         economy,
		Level:           level,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Phase:           PhasePlaying,
		Speed:           1,
		lastTickAt:      -1,
		towers:          make(map[grid.Point]types.EntityID),
	}
	g.WaveSystem = system.NewWaveSystem(ecs, gameMap, eventDispatcher, economy, level.Waves)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, economy)
	g.MovementSystem = system.NewMovementSystem(ecs, gameMap.Path, eventDispatcher, economy)

	g.WaveSystem.StartWave(0, 0)
	return g, nil
}

// Update advances the simulation by one tick.
//
// The wall-clock delta is clamped so a backgrounded window cannot fast
// forward the game; the speed multiplier then scales the clamped delta
// into effective time. While paused only the wall clock bookkeeping
// moves, so unpausing never produces a compensating jump. The step
// order below is fixed: wave advance, spawn, fire, resolve, move,
// terminal check. Reordering it changes observable results.
func (g *Game) Update(now types.Timestamp) {
	if g.Phase != PhasePlaying {
		return
	}

	if g.lastTickAt < 0 {
		g.lastTickAt = now
	}
	wallDelta := float64(now - g.lastTickAt)
	g.lastTickAt = now
	if wallDelta < 0 {
		wallDelta = 0
	}
	if wallDelta > config.MaxDeltaMS {
		wallDelta = config.MaxDeltaMS
	}

	if g.Speed <= 0 {
		return
	}
	deltaMS := wallDelta * g.Speed
	g.GameTime += types.Timestamp(deltaMS)

	g.WaveSystem.Advance(g.GameTime)
	g.WaveSystem.SpawnDue(g.GameTime)
	g.CombatSystem.Update(g.GameTime)
	g.ProjectileSystem.Update(deltaMS, g.GameTime)
	g.MovementSystem.Update(deltaMS, g.GameTime)

	if g.Economy.Lives <= 0 {
		g.Phase = PhaseLost
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameLost})
	} else if g.WaveSystem.CampaignCleared() {
		g.Phase = PhaseWon
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon})
	}
}

// SetSpeed changes the speed multiplier; 0 pauses the simulation.
func (g *Game) SetSpeed(mult float64) {
	if mult < 0 {
		mult = 0
	}
	g.Speed = mult
}
