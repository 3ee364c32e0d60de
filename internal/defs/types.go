// internal/defs/types.go
package defs

import (
	"image/color"
	"time"

	"grid-defense/pkg/grid"
)

// Visuals describes how an archetype is drawn.
type Visuals struct {
	Color        color.RGBA
	RadiusFactor float64 // доля от размера тайла
}

// TowerDefinition is an immutable tower archetype.
type TowerDefinition struct {
	ID       string
	Name     string
	Cost     int
	Damage   int
	Range    float64 // радиус в тайлах
	FireRate time.Duration
	Slows    bool
	Visuals  Visuals
}

// EnemyDefinition is an immutable enemy archetype.
type EnemyDefinition struct {
	ID      string
	Name    string
	Health  int
	Speed   float64 // тайлов в секунду
	Reward  int
	Visuals Visuals
}

// SpawnGroup emits Count enemies of one type, Interval apart.
type SpawnGroup struct {
	EnemyID  string
	Count    int
	Interval time.Duration
}

// WaveDefinition описывает параметры для одной волны врагов.
// Groups are chained in declaration order, never interleaved.
type WaveDefinition struct {
	Groups []SpawnGroup
	Reward int
}

// LevelDefinition is everything needed to start a game. A nil Path means
// the route is generated from the game seed.
type LevelDefinition struct {
	GridSize      int
	StartingMoney int
	StartingLives int
	Path          []grid.Point
	Waves         []WaveDefinition
}
