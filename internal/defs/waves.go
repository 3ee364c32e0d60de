// internal/defs/waves.go
package defs

import (
	"time"

	"grid-defense/internal/config"
)

// Campaign определяет последовательность волн в игре.
var Campaign = []WaveDefinition{
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_GRUNT", Count: 5, Interval: time.Millisecond * 800},
	}, Reward: 50},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_GRUNT", Count: 8, Interval: time.Millisecond * 700},
	}, Reward: 60},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_GRUNT", Count: 6, Interval: time.Millisecond * 700},
		{EnemyID: "ENEMY_RUNNER", Count: 4, Interval: time.Millisecond * 500},
	}, Reward: 70},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_RUNNER", Count: 10, Interval: time.Millisecond * 450},
	}, Reward: 80},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BRUTE", Count: 4, Interval: time.Millisecond * 1500},
	}, Reward: 100},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_GRUNT", Count: 10, Interval: time.Millisecond * 500},
		{EnemyID: "ENEMY_RUNNER", Count: 6, Interval: time.Millisecond * 400},
	}, Reward: 110},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BRUTE", Count: 6, Interval: time.Millisecond * 1200},
		{EnemyID: "ENEMY_RUNNER", Count: 8, Interval: time.Millisecond * 350},
	}, Reward: 130},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_GRUNT", Count: 15, Interval: time.Millisecond * 350},
	}, Reward: 150},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BRUTE", Count: 8, Interval: time.Millisecond * 1000},
		{EnemyID: "ENEMY_RUNNER", Count: 10, Interval: time.Millisecond * 300},
	}, Reward: 200},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BOSS", Count: 1, Interval: time.Second * 2},
		{EnemyID: "ENEMY_GRUNT", Count: 10, Interval: time.Millisecond * 400},
	}, Reward: 500},
}

// DefaultLevel is the standard campaign on a generated route.
func DefaultLevel() LevelDefinition {
	return LevelDefinition{
		GridSize:      config.GridSize,
		StartingMoney: config.StartingMoney,
		StartingLives: config.StartingLives,
		Waves:         Campaign,
	}
}
