// internal/defs/towers.go
package defs

import (
	"image/color"
	"time"
)

// TowerLibrary holds all tower definitions, keyed by their ID.
var TowerLibrary = map[string]TowerDefinition{
	"TOWER_GUN": {
		ID:       "TOWER_GUN",
		Name:     "Gun Tower",
		Cost:     50,
		Damage:   10,
		Range:    2.0,
		FireRate: time.Millisecond * 800,
		Visuals:  Visuals{Color: color.RGBA{255, 50, 50, 255}, RadiusFactor: 0.30},
	},
	"TOWER_FROST": {
		ID:       "TOWER_FROST",
		Name:     "Frost Tower",
		Cost:     60,
		Damage:   5,
		Range:    2.5,
		FireRate: time.Millisecond * 1000,
		Slows:    true,
		Visuals:  Visuals{Color: color.RGBA{80, 160, 255, 255}, RadiusFactor: 0.30},
	},
	"TOWER_CANNON": {
		ID:       "TOWER_CANNON",
		Name:     "Cannon Tower",
		Cost:     100,
		Damage:   35,
		Range:    3.5,
		FireRate: time.Millisecond * 1800,
		Visuals:  Visuals{Color: color.RGBA{180, 50, 230, 255}, RadiusFactor: 0.36},
	},
}
