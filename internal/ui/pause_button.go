// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/utils"
)

// PauseButton is the round toggle in the top-right corner. It shows two bars
// while running and a play triangle while paused, and swells briefly on
// every toggle.
type PauseButton struct {
	X, Y       float64
	Size       float64
	IsPaused   bool
	PauseColor color.RGBA
	PlayColor  color.RGBA
	sinceClick float64
}

func NewPauseButton(x, y, size float64, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		sinceClick: math.Inf(1),
	}
}

func (b *PauseButton) Update(deltaTime float64) {
	b.sinceClick += deltaTime
}

func (b *PauseButton) Draw(s render.Surface) {
	scale := 1.0 + 0.3*math.Exp(-b.sinceClick*8)
	size := b.Size * scale

	if b.IsPaused {
		s.DrawPolygon([]utils.Vec2{
			{X: b.X - size, Y: b.Y - size*1.2},
			{X: b.X - size, Y: b.Y + size*1.2},
			{X: b.X + size, Y: b.Y},
		}, b.PlayColor, 0)
		return
	}
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	s.DrawRect(utils.Rect{X: b.X - width - spacing/2, Y: b.Y - height/2, W: width, H: height}, b.PauseColor, 0)
	s.DrawRect(utils.Rect{X: b.X + spacing/2, Y: b.Y - height/2, W: width, H: height}, b.PauseColor, 0)
}

func (b *PauseButton) IsClicked(p utils.Vec2) bool {
	return p.DistanceTo(utils.Vec2{X: b.X, Y: b.Y}) <= b.Size*1.5
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.sinceClick = 0
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
