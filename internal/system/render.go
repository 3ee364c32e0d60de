// internal/system/render.go
package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/utils"
	"grid-defense/pkg/render"
)

// RenderSystem рисует сущности поверх статичной карты.
type RenderSystem struct {
	ecs      *entity.ECS
	grid     *render.GridRenderer
	fontFace font.Face
}

func NewRenderSystem(ecs *entity.ECS, gridRenderer *render.GridRenderer) *RenderSystem {
	return &RenderSystem{
		ecs:      ecs,
		grid:     gridRenderer,
		fontFace: basicfont.Face7x13,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	ts := s.grid.TileSize()

	// Башни: корпус + кольцо радиуса.
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			continue
		}
		cx, cy := s.grid.CenterOf(pos.X, pos.Y)
		if combat, hasCombat := s.ecs.Combats[id]; hasCombat {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(combat.Range*ts), 1, config.RangeRingColor, true)
		}
		body := float32(def.Visuals.RadiusFactor * ts)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), body, def.Visuals.Color, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), body, 2, render.DarkenColor(def.Visuals.Color), true)
	}

	// Враги: радиус сжимается вместе с остатком здоровья.
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		def, ok := defs.EnemyLibrary[enemy.DefID]
		if !ok {
			continue
		}
		cx, cy := s.grid.CenterOf(pos.X, pos.Y)
		frac := float64(health.Value) / float64(health.Max)
		radius := (0.6 + 0.4*frac) * def.Visuals.RadiusFactor * ts
		c := def.Visuals.Color
		if _, slowed := s.ecs.SlowEffects[id]; slowed {
			c = config.SlowTintColor
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), c, true)
	}

	// Снаряды: позиция интерполируется по прогрессу полёта.
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		px := utils.Lerp(proj.FromX, proj.ToX, proj.Progress)
		py := utils.Lerp(proj.FromY, proj.ToY, proj.Progress)
		cx, cy := s.grid.CenterOf(px, py)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), config.ProjectileRadius, config.ProjectileColor, true)
	}
}

// DrawHUD prints the economy and wave line in the top-left corner.
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, money, lives, waveNumber int, phase string, speed float64) {
	line := fmt.Sprintf("$%d  lives %d  wave %d  x%.0f  %s", money, lives, waveNumber+1, speed, phase)
	text.Draw(screen, line, s.fontFace, config.HUDMarginX, config.HUDMarginY+10, config.TextLightColor)
}
