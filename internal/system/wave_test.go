// internal/system/wave_test.go
package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
)

func newWaveFixture(t *testing.T, waves []defs.WaveDefinition) (*WaveSystem, *entity.ECS, *event.Dispatcher, *fakeBank) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	bank := &fakeBank{}
	ws := NewWaveSystem(ecs, testGrid(t), dispatcher, bank, waves)
	return ws, ecs, dispatcher, bank
}

func TestSpawnQueueChainsGroupsInOrder(t *testing.T) {
	ws, ecs, _, _ := newWaveFixture(t, []defs.WaveDefinition{{
		Groups: []defs.SpawnGroup{
			{EnemyID: "ENEMY_GRUNT", Count: 2, Interval: time.Millisecond * 100},
			{EnemyID: "ENEMY_RUNNER", Count: 1, Interval: time.Millisecond * 50},
		},
	}})
	ws.StartWave(0, 1000)

	// Entries land at 1100, 1200, 1250: groups chain, never interleave.
	ws.SpawnDue(1099)
	assert.Len(t, ecs.Enemies, 0)
	ws.SpawnDue(1100)
	assert.Len(t, ecs.Enemies, 1)
	ws.SpawnDue(1249)
	assert.Len(t, ecs.Enemies, 2)
	ws.SpawnDue(1250)
	assert.Len(t, ecs.Enemies, 3)

	var kinds []string
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		kinds = append(kinds, ecs.Enemies[id].DefID)
	}
	assert.Equal(t, []string{"ENEMY_GRUNT", "ENEMY_GRUNT", "ENEMY_RUNNER"}, kinds)
}

func TestZeroCountGroupDoesNotAdvanceSchedule(t *testing.T) {
	ws, ecs, _, _ := newWaveFixture(t, []defs.WaveDefinition{{
		Groups: []defs.SpawnGroup{
			{EnemyID: "ENEMY_GRUNT", Count: 0, Interval: time.Second * 10},
			{EnemyID: "ENEMY_RUNNER", Count: 1, Interval: time.Millisecond * 200},
		},
	}})
	ws.StartWave(0, 0)

	ws.SpawnDue(200)
	require.Len(t, ecs.Enemies, 1)
	for _, enemy := range ecs.Enemies {
		assert.Equal(t, "ENEMY_RUNNER", enemy.DefID)
	}
}

func TestSpawnedEnemyStartsAtPathEntry(t *testing.T) {
	ws, ecs, _, _ := newWaveFixture(t, []defs.WaveDefinition{{
		Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 1, Interval: time.Millisecond * 100}},
	}})
	ws.StartWave(0, 0)
	ws.SpawnDue(100)

	ids := entity.SortedIDs(ecs.Enemies)
	require.Len(t, ids, 1)
	id := ids[0]
	def := defs.EnemyLibrary["ENEMY_GRUNT"]
	assert.Equal(t, 0.0, ecs.Positions[id].X)
	assert.Equal(t, 1.0, ecs.Positions[id].Y)
	assert.Equal(t, 0, ecs.PathProgresses[id].Index)
	assert.Equal(t, def.Health, ecs.Healths[id].Value)
	assert.Equal(t, def.Health, ecs.Healths[id].Max)
	assert.Equal(t, def.Speed, ecs.Velocities[id].Speed)
}

func TestWaveCompletionCreditsRewardAndStartsNext(t *testing.T) {
	ws, ecs, dispatcher, bank := newWaveFixture(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 1, Interval: time.Millisecond * 100}}, Reward: 50},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_RUNNER", Count: 1, Interval: time.Millisecond * 100}}, Reward: 60},
	})
	ws.StartWave(0, 0)
	ws.SpawnDue(100)
	require.Equal(t, 1, ws.ActiveEnemies())

	// Queue drained but the enemy is alive: not complete yet.
	ws.Advance(200)
	assert.Equal(t, 0, bank.money)
	assert.Equal(t, 0, ws.CurrentWaveNumber())

	ids := entity.SortedIDs(ecs.Enemies)
	ecs.RemoveEnemy(ids[0])
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: ids[0]})

	ws.Advance(300)
	assert.Equal(t, 50, bank.money)
	assert.Equal(t, 1, ws.CurrentWaveNumber())
	assert.False(t, ws.CampaignCleared())
}

func TestFinalWaveCompletionClearsCampaign(t *testing.T) {
	ws, ecs, dispatcher, bank := newWaveFixture(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 1, Interval: time.Millisecond * 100}}, Reward: 40},
	})
	ws.StartWave(0, 0)
	ws.SpawnDue(100)

	ids := entity.SortedIDs(ecs.Enemies)
	ecs.RemoveEnemy(ids[0])
	dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: ids[0]})

	ws.Advance(200)
	assert.True(t, ws.CampaignCleared())
	assert.Equal(t, -1, ws.CurrentWaveNumber())
	assert.Equal(t, 40, bank.money, "the reward is paid even if the last enemy leaked")

	// Further advances stay put.
	ws.Advance(300)
	assert.Equal(t, 40, bank.money)
}
