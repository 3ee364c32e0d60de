// pkg/render/grid_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grid-defense/pkg/grid"
)

// GridRenderer draws the static tile map. The map never changes during
// a run, so it is rendered once into an offscreen image.
type GridRenderer struct {
	gameMap  *grid.Grid
	tileSize float64
	offsetX  float64
	offsetY  float64
	colors   *MapColors
	mapImage *ebiten.Image
}

func NewGridRenderer(gameMap *grid.Grid, tileSize, screenWidth, screenHeight float64, colors *MapColors) *GridRenderer {
	mapPixels := tileSize * float64(gameMap.Size)
	r := &GridRenderer{
		gameMap:  gameMap,
		tileSize: tileSize,
		offsetX:  (screenWidth - mapPixels) / 2,
		offsetY:  (screenHeight - mapPixels) / 2,
		colors:   colors,
	}
	r.renderMapImage(int(screenWidth), int(screenHeight))
	return r
}

func (r *GridRenderer) renderMapImage(w, h int) {
	img := ebiten.NewImage(w, h)
	img.Fill(r.colors.Background)

	ts := float32(r.tileSize)
	for y := 0; y < r.gameMap.Size; y++ {
		for x := 0; x < r.gameMap.Size; x++ {
			sx, sy := r.TileToScreen(grid.Point{X: x, Y: y})
			var c = r.colors.Grass
			switch r.gameMap.At(grid.Point{X: x, Y: y}).Kind {
			case grid.TilePath:
				c = r.colors.Path
			case grid.TileSpawn:
				c = r.colors.Spawn
			case grid.TileGoal:
				c = r.colors.Goal
			}
			vector.DrawFilledRect(img, float32(sx), float32(sy), ts, ts, c, false)
			vector.StrokeRect(img, float32(sx), float32(sy), ts, ts, 1, r.colors.GridLine, false)
		}
	}
	r.mapImage = img
}

// Draw blits the cached map image.
func (r *GridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// TileToScreen returns the screen position of a tile's top-left corner.
func (r *GridRenderer) TileToScreen(p grid.Point) (float64, float64) {
	return r.offsetX + float64(p.X)*r.tileSize, r.offsetY + float64(p.Y)*r.tileSize
}

// CenterOf returns the screen position of a tile-space coordinate,
// treating fractional coordinates as positions between tile centers.
func (r *GridRenderer) CenterOf(x, y float64) (float64, float64) {
	return r.offsetX + (x+0.5)*r.tileSize, r.offsetY + (y+0.5)*r.tileSize
}

// ScreenToTile maps a cursor position to the tile under it.
func (r *GridRenderer) ScreenToTile(x, y int) grid.Point {
	tx := int((float64(x) - r.offsetX) / r.tileSize)
	ty := int((float64(y) - r.offsetY) / r.tileSize)
	if float64(x) < r.offsetX {
		tx = -1
	}
	if float64(y) < r.offsetY {
		ty = -1
	}
	return grid.Point{X: tx, Y: ty}
}

// TileSize returns the edge length of one tile in pixels.
func (r *GridRenderer) TileSize() float64 {
	return r.tileSize
}
