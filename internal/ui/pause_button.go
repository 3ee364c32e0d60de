// internal/ui/pause_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grid-defense/internal/config"
)

// PauseButton ставит симуляцию на паузу (множитель скорости 0).
type PauseButton struct {
	X, Y   float32
	Size   float32
	Paused bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	c := config.PauseButtonColor
	half := b.Size / 2
	if b.Paused {
		// Треугольник "play", пока стоим на паузе.
		var p vector.Path
		p.MoveTo(b.X-half, b.Y-half)
		p.LineTo(b.X+half, b.Y)
		p.LineTo(b.X-half, b.Y+half)
		p.Close()
		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(c.R) / 255
			vs[i].ColorG = float32(c.G) / 255
			vs[i].ColorB = float32(c.B) / 255
			vs[i].ColorA = float32(c.A) / 255
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}
	barW := b.Size / 3
	vector.DrawFilledRect(screen, b.X-half, b.Y-half, barW, b.Size, c, true)
	vector.DrawFilledRect(screen, b.X+half-barW, b.Y-half, barW, b.Size, c, true)
}

func (b *PauseButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *PauseButton) SetPaused(paused bool) {
	b.Paused = paused
}
