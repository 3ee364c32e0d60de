// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 760
	TileSize     = 48.0
	GridSize     = 14

	StartingMoney = 150
	StartingLives = 20

	// A single huge wall-clock delta (backgrounded window, debugger stop)
	// must not advance the simulation unrealistically far in one tick.
	MaxDeltaMS = 250.0

	SellRefundFactor = 0.5

	// Projectiles always take the same flight time regardless of distance.
	ProjectileFlightMS = 250.0
	ProjectileRadius   = 4.0

	SlowFactor     = 0.5
	SlowDurationMS = 2000.0

	EnemyRadiusFactor = 0.28

	HUDMarginX = 12
	HUDMarginY = 10

	SpeedButtonX = ScreenWidth - 44
	SpeedButtonY = 28
	PauseButtonX = ScreenWidth - 96
	PauseButtonY = 28
	ButtonRadius = 14.0
)

// Speed multiplier cycle for the speed button; 0 (pause) lives on its own button.
var SpeedLevels = []float64{1, 2, 4}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{46, 74, 46, 255}
	PathColor       = color.RGBA{120, 104, 76, 255}
	SpawnColor      = color.RGBA{0, 200, 80, 255}
	GoalColor       = color.RGBA{220, 50, 50, 255}
	GridLineColor   = color.RGBA{30, 30, 42, 255}

	ProjectileColor = color.RGBA{255, 240, 160, 255}
	SlowTintColor   = color.RGBA{120, 180, 255, 255}
	RangeRingColor  = color.RGBA{240, 240, 240, 70}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	PauseButtonColor  = color.RGBA{70, 130, 180, 220}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220}, // x1
		{220, 140, 60, 220}, // x2
		{220, 60, 60, 220},  // x4
	}
)
