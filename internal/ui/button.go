// internal/ui/button.go
package ui

import (
	"fmt"
	"image/color"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/utils"
)

var (
	buttonColor         = color.RGBA{60, 60, 80, 220}
	buttonDisabledColor = color.RGBA{40, 40, 40, 200}
	buttonBorderColor   = color.RGBA{200, 200, 220, 255}
	buttonTextDisabled  = color.RGBA{130, 130, 130, 255}
)

// TowerButton arms one tower type for placement.
type TowerButton struct {
	Rect  utils.Rect
	Type  defs.TowerType
	Label string
	Cost  int
	Color color.RGBA
}

// NewTowerButtons lays the buttons out along the bottom edge in library
// order, centred horizontally.
func NewTowerButtons(lib *defs.Library) []*TowerButton {
	n := float64(len(lib.TowerOrder))
	total := n*config.HUDButtonWidth + (n-1)*config.HUDButtonOffset
	x := (config.ScreenWidth - total) / 2
	y := config.ScreenHeight - config.HUDButtonHeight - config.HUDButtonOffset

	buttons := make([]*TowerButton, 0, len(lib.TowerOrder))
	for _, t := range lib.TowerOrder {
		def := lib.Tower(t)
		buttons = append(buttons, &TowerButton{
			Rect:  utils.Rect{X: x, Y: y, W: config.HUDButtonWidth, H: config.HUDButtonHeight},
			Type:  t,
			Label: def.Name,
			Cost:  def.Cost,
			Color: def.BulletRGBA(),
		})
		x += config.HUDButtonWidth + config.HUDButtonOffset
	}
	return buttons
}

// Contains reports whether p lies inside the button.
func (b *TowerButton) Contains(p utils.Vec2) bool {
	return p.X >= b.Rect.Left() && p.X < b.Rect.Right() && p.Y >= b.Rect.Top() && p.Y < b.Rect.Bottom()
}

// Draw renders the button. Unaffordable buttons are greyed out and the armed
// one gets a thicker border in its tower colour.
func (b *TowerButton) Draw(s render.Surface, affordable, selected bool) {
	bg, fg := buttonColor, config.TextOneColor
	if !affordable {
		bg, fg = buttonDisabledColor, buttonTextDisabled
	}
	s.DrawRect(b.Rect, bg, 0)
	if selected {
		s.DrawRect(b.Rect, b.Color, 3)
	} else {
		s.DrawRect(b.Rect, buttonBorderColor, 1)
	}

	c := b.Rect.Center()
	s.DrawCircle(utils.Vec2{X: c.X, Y: b.Rect.Y + 14}, 7, b.Color, 0)
	s.DrawText(b.Label, config.DefaultTextFontSize, utils.Vec2{X: c.X, Y: c.Y + 4}, fg)
	s.DrawText(fmt.Sprintf("%d", b.Cost), config.DefaultTextFontSize, utils.Vec2{X: c.X, Y: b.Rect.Bottom() - 12}, fg)
}

// ButtonAt returns the button under p.
func ButtonAt(buttons []*TowerButton, p utils.Vec2) (*TowerButton, bool) {
	for _, b := range buttons {
		if b.Contains(p) {
			return b, true
		}
	}
	return nil, false
}
