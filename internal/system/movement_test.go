// internal/system/movement_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-defense/internal/component"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
)

func newMovementFixture(t *testing.T) (*MovementSystem, *entity.ECS, *event.Dispatcher, *fakeBank) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	bank := &fakeBank{lives: 20}
	ms := NewMovementSystem(ecs, testGrid(t).Path, dispatcher, bank)
	return ms, ecs, dispatcher, bank
}

func TestEnemyMovesProportionally(t *testing.T) {
	ms, ecs, _, _ := newMovementFixture(t)
	id := addEnemy(ecs, 0, 1, 50, 1.0, 10) // 1 tile per second

	ms.Update(500, 0)
	assert.InDelta(t, 0.5, ecs.Positions[id].X, 1e-9)
	assert.Equal(t, 0, ecs.PathProgresses[id].Index)
}

func TestEnemySnapsToWaypoint(t *testing.T) {
	ms, ecs, _, _ := newMovementFixture(t)
	id := addEnemy(ecs, 0, 1, 50, 1.0, 10)
	ecs.Positions[id].X = 0.7

	// Movement budget (0.5) covers the remaining 0.3: snap, advance index.
	ms.Update(500, 0)
	assert.Equal(t, 1.0, ecs.Positions[id].X)
	assert.Equal(t, 1.0, ecs.Positions[id].Y)
	assert.Equal(t, 1, ecs.PathProgresses[id].Index)
}

func TestSlowHalvesSpeedUntilExpiry(t *testing.T) {
	ms, ecs, _, _ := newMovementFixture(t)
	id := addEnemy(ecs, 0, 1, 50, 1.0, 10)
	ecs.SlowEffects[id] = &component.SlowEffect{Until: 1000}

	ms.Update(500, 500) // slowed: half speed
	assert.InDelta(t, 0.25, ecs.Positions[id].X, 1e-9)

	ms.Update(500, 1500) // effect expired: full speed again, entry dropped
	assert.InDelta(t, 0.75, ecs.Positions[id].X, 1e-9)
	assert.NotContains(t, ecs.SlowEffects, id)
}

func TestGoalArrivalDebitsOneLife(t *testing.T) {
	ms, ecs, dispatcher, bank := newMovementFixture(t)
	leaked := newEventCounter(dispatcher, event.EnemyLeaked)

	id := addEnemy(ecs, 5, 1, 50, 1.0, 10) // standing on the goal tile
	ecs.PathProgresses[id].Index = 5

	ms.Update(16, 0)
	assert.NotContains(t, ecs.Enemies, id)
	assert.Equal(t, 19, bank.lives)
	assert.Equal(t, 1, leaked.counts[event.EnemyLeaked])

	// Lives fall only on arrivals, never from walking.
	ms.Update(16, 0)
	assert.Equal(t, 19, bank.lives)
}

func TestPathContainment(t *testing.T) {
	ms, ecs, _, _ := newMovementFixture(t)
	path := testGrid(t).Path
	id := addEnemy(ecs, 0, 1, 50, 1.6, 10)

	for step := 0; step < 300; step++ {
		ms.Update(16, 0)
		if _, alive := ecs.Enemies[id]; !alive {
			return
		}
		idx := ecs.PathProgresses[id].Index
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(path))
		x := ecs.Positions[id].X
		require.GreaterOrEqual(t, x, float64(path[idx].X))
		if idx < len(path)-1 {
			require.LessOrEqual(t, x, float64(path[idx+1].X))
		}
		require.Equal(t, 1.0, ecs.Positions[id].Y)
	}
	t.Fatal("enemy never reached the goal")
}

func TestMovementIsIndependentPerEnemy(t *testing.T) {
	// An enemy's trajectory must not depend on who else is walking.
	solo, soloECS, _, _ := newMovementFixture(t)
	soloID := addEnemy(soloECS, 0, 1, 50, 0.8, 10)

	crowd, crowdECS, _, _ := newMovementFixture(t)
	addEnemy(crowdECS, 3, 1, 30, 1.6, 15)
	crowdID := addEnemy(crowdECS, 0, 1, 50, 0.8, 10)
	addEnemy(crowdECS, 1.5, 1, 180, 0.5, 35)

	for step := 0; step < 100; step++ {
		solo.Update(16, 0)
		crowd.Update(16, 0)
		assert.Equal(t, soloECS.Positions[soloID].X, crowdECS.Positions[crowdID].X)
		assert.Equal(t, soloECS.PathProgresses[soloID].Index, crowdECS.PathProgresses[crowdID].Index)
	}
}
