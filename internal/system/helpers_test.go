// internal/system/helpers_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grid-defense/internal/component"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
	"grid-defense/pkg/grid"
)

// fakeBank stands in for the engine ledger in system tests.
type fakeBank struct {
	money int
	lives int
}

func (b *fakeBank) Credit(amount int) { b.money += amount }
func (b *fakeBank) LoseLife()         { b.lives-- }

// eventCounter records how often each event type fired.
type eventCounter struct {
	counts map[event.EventType]int
}

func newEventCounter(d *event.Dispatcher, eventTypes ...event.EventType) *eventCounter {
	c := &eventCounter{counts: make(map[event.EventType]int)}
	for _, t := range eventTypes {
		d.Subscribe(t, c)
	}
	return c
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
}

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	path := make([]grid.Point, 6)
	for i := range path {
		path[i] = grid.Point{X: i, Y: 1}
	}
	g, err := grid.New(6, path)
	require.NoError(t, err)
	return g
}

func addEnemy(ecs *entity.ECS, x, y float64, health int, speed float64, reward int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.PathProgresses[id] = &component.PathProgress{Index: int(x)}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_GRUNT", Reward: reward}
	return id
}

func addTower(ecs *entity.ECS, x, y float64, damage int, rangeTiles, fireRateMS float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{DefID: "TOWER_GUN", Cell: grid.Point{X: int(x), Y: int(y)}}
	ecs.Combats[id] = &component.Combat{
		Damage:     damage,
		Range:      rangeTiles,
		FireRateMS: fireRateMS,
		LastShotAt: -types.Timestamp(fireRateMS),
	}
	return id
}
