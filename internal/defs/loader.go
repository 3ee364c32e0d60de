// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"grid-defense/internal/config"
	"grid-defense/pkg/grid"
)

// On-disk level schema. Intervals are plain milliseconds so level files
// stay hand-editable.
type levelFile struct {
	GridSize      int          `json:"grid_size"`
	StartingMoney int          `json:"starting_money"`
	StartingLives int          `json:"starting_lives"`
	Path          []grid.Point `json:"path"`
	Waves         []waveFile   `json:"waves"`
}

type waveFile struct {
	Reward int         `json:"reward"`
	Groups []groupFile `json:"groups"`
}

type groupFile struct {
	Enemy      string `json:"enemy"`
	Count      int    `json:"count"`
	IntervalMS int    `json:"interval_ms"`
}

// LoadLevel reads a custom level from a JSON file. Omitted top-level
// fields fall back to the standard campaign values.
func LoadLevel(path string) (LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var lf levelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level file: %w", err)
	}

	level := LevelDefinition{
		GridSize:      lf.GridSize,
		StartingMoney: lf.StartingMoney,
		StartingLives: lf.StartingLives,
		Path:          lf.Path,
	}
	if level.GridSize == 0 {
		level.GridSize = config.GridSize
	}
	if level.StartingMoney == 0 {
		level.StartingMoney = config.StartingMoney
	}
	if level.StartingLives == 0 {
		level.StartingLives = config.StartingLives
	}

	if len(lf.Waves) == 0 {
		return LevelDefinition{}, fmt.Errorf("level %q defines no waves", path)
	}
	for wi, wf := range lf.Waves {
		wave := WaveDefinition{Reward: wf.Reward}
		for gi, gf := range wf.Groups {
			if _, ok := EnemyLibrary[gf.Enemy]; !ok {
				return LevelDefinition{}, fmt.Errorf("wave %d group %d: unknown enemy %q", wi, gi, gf.Enemy)
			}
			if gf.Count < 0 {
				return LevelDefinition{}, fmt.Errorf("wave %d group %d: negative count", wi, gi)
			}
			if gf.IntervalMS <= 0 {
				return LevelDefinition{}, fmt.Errorf("wave %d group %d: interval must be positive", wi, gi)
			}
			wave.Groups = append(wave.Groups, SpawnGroup{
				EnemyID:  gf.Enemy,
				Count:    gf.Count,
				Interval: time.Duration(gf.IntervalMS) * time.Millisecond,
			})
		}
		level.Waves = append(level.Waves, wave)
	}

	return level, nil
}
