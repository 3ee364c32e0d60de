// internal/defs/enemies.go
package defs

import "image/color"

// EnemyLibrary holds all enemy definitions, keyed by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_GRUNT": {
		ID:      "ENEMY_GRUNT",
		Name:    "Grunt",
		Health:  50,
		Speed:   0.8,
		Reward:  10,
		Visuals: Visuals{Color: color.RGBA{200, 60, 60, 255}, RadiusFactor: 0.28},
	},
	"ENEMY_RUNNER": {
		ID:      "ENEMY_RUNNER",
		Name:    "Runner",
		Health:  30,
		Speed:   1.6,
		Reward:  15,
		Visuals: Visuals{Color: color.RGBA{230, 200, 50, 255}, RadiusFactor: 0.22},
	},
	"ENEMY_BRUTE": {
		ID:      "ENEMY_BRUTE",
		Name:    "Brute",
		Health:  180,
		Speed:   0.5,
		Reward:  35,
		Visuals: Visuals{Color: color.RGBA{140, 60, 160, 255}, RadiusFactor: 0.38},
	},
	"ENEMY_BOSS": {
		ID:      "ENEMY_BOSS",
		Name:    "Boss",
		Health:  900,
		Speed:   0.45,
		Reward:  200,
		Visuals: Visuals{Color: color.RGBA{40, 40, 40, 255}, RadiusFactor: 0.45},
	},
}
