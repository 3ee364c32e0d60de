// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/engine"
	"grid-defense/internal/system"
	"grid-defense/internal/types"
	"grid-defense/internal/ui"
	"grid-defense/pkg/render"
)

// AppGame is the ebiten shell around the simulation. It owns the only
// clock the engine ever sees: wall milliseconds passed into Update.
type AppGame struct {
	game         *engine.Game
	gridRenderer *render.GridRenderer
	renderSystem *system.RenderSystem
	speedButton  *ui.SpeedButton
	pauseButton  *ui.PauseButton
	selectedDef  string
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		a.selectedDef = "TOWER_GUN"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		a.selectedDef = "TOWER_FROST"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		a.selectedDef = "TOWER_CANNON"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.togglePause()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case a.pauseButton.Contains(x, y):
			a.togglePause()
		case a.speedButton.Contains(x, y):
			if !a.pauseButton.Paused {
				a.game.SetSpeed(a.speedButton.ToggleState())
			}
		default:
			a.game.PlaceTower(a.gridRenderer.ScreenToTile(x, y), a.selectedDef)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		a.game.SellTower(a.gridRenderer.ScreenToTile(x, y))
	}

	a.game.Update(types.Timestamp(time.Now().UnixMilli()))
	return nil
}

func (a *AppGame) togglePause() {
	if a.pauseButton.Paused {
		a.pauseButton.SetPaused(false)
		a.game.SetSpeed(a.speedButton.Multiplier())
	} else {
		a.pauseButton.SetPaused(true)
		a.game.SetSpeed(0)
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.gridRenderer.Draw(screen)
	a.renderSystem.Draw(screen)
	a.renderSystem.DrawHUD(screen,
		a.game.Economy.Money,
		a.game.Economy.Lives,
		a.game.WaveSystem.CurrentWaveNumber(),
		a.game.Phase.String(),
		a.game.Speed,
	)
	a.speedButton.Draw(screen)
	a.pauseButton.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	game, err := engine.NewGame(defs.DefaultLevel(), time.Now().UnixNano())
	if err != nil {
		log.Fatal(err)
	}

	mapColors := &render.MapColors{
		Background: config.BackgroundColor,
		Grass:      config.GrassColor,
		Path:       config.PathColor,
		Spawn:      config.SpawnColor,
		Goal:       config.GoalColor,
		GridLine:   config.GridLineColor,
	}
	gridRenderer := render.NewGridRenderer(game.Grid, config.TileSize, config.ScreenWidth, config.ScreenHeight, mapColors)

	app := &AppGame{
		game:         game,
		gridRenderer: gridRenderer,
		renderSystem: system.NewRenderSystem(game.ECS, gridRenderer),
		speedButton:  ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.ButtonRadius),
		pauseButton:  ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.ButtonRadius),
		selectedDef:  "TOWER_GUN",
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
