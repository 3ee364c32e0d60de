// internal/ui/speed_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grid-defense/internal/config"
)

// SpeedButton циклически переключает множитель скорости (x1/x2/x4).
type SpeedButton struct {
	X, Y         float32
	Size         float32
	CurrentState int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	c := config.SpeedButtonColors[b.CurrentState]
	// Два треугольника "перемотки".
	half := b.Size / 2
	var p vector.Path
	p.MoveTo(b.X-b.Size, b.Y-half)
	p.LineTo(b.X, b.Y)
	p.LineTo(b.X-b.Size, b.Y+half)
	p.Close()
	p.MoveTo(b.X-half+b.Size/2, b.Y-half)
	p.LineTo(b.X+b.Size/2+half, b.Y)
	p.LineTo(b.X-half+b.Size/2, b.Y+half)
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
}

func (b *SpeedButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// ToggleState advances to the next speed level and returns its multiplier.
func (b *SpeedButton) ToggleState() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedLevels)
	return config.SpeedLevels[b.CurrentState]
}

// Multiplier returns the speed for the current button state.
func (b *SpeedButton) Multiplier() float64 {
	return config.SpeedLevels[b.CurrentState]
}
