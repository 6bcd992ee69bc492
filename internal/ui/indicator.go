// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/utils"
)

const (
	indicatorX      = 110.0
	indicatorY      = 24.0
	indicatorLineDy = 28.0
)

// StatusIndicator shows the energy pool and the escape count in the top-left
// corner. The energy line pulses briefly whenever the value changes.
type StatusIndicator struct {
	lastEnergy int
	pulse      float64
}

func NewStatusIndicator() *StatusIndicator {
	return &StatusIndicator{lastEnergy: -1}
}

// Update tracks energy changes for the pulse.
func (i *StatusIndicator) Update(deltaTime float64, energy int) {
	if i.lastEnergy >= 0 && energy != i.lastEnergy {
		i.pulse = 1
	}
	i.lastEnergy = energy
	i.pulse = max(0, i.pulse-deltaTime*4)
}

func (i *StatusIndicator) Draw(s render.Surface, energy, escaped, limit int) {
	center := utils.Vec2{X: indicatorX, Y: indicatorY}
	s.DrawCircle(utils.Vec2{X: 20, Y: indicatorY}, 8+4*i.pulse, config.EnergyColor, 0)
	drawShadowed(s, fmt.Sprintf("energy %d", energy), config.HUDFontSize, center, config.EnergyColor)

	center.Y += indicatorLineDy
	c := config.TextOneColor
	if escaped > 0 && escaped >= limit-1 {
		c = config.LoseColor
	}
	drawShadowed(s, fmt.Sprintf("escaped %d / %d", escaped, limit), config.HUDFontSize, center, c)
}

func drawShadowed(s render.Surface, text string, size int, center utils.Vec2, c color.RGBA) {
	shadow := center.Add(utils.Vec2{X: config.CombatTextShadowOffset, Y: config.CombatTextShadowOffset})
	s.DrawText(text, size, shadow, config.ShadowColor)
	s.DrawText(text, size, center, c)
}
