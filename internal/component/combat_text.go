package component

import (
	"image/color"

	"go-bunny-defense/pkg/utils"
)

// CombatTextKind selects speed, lifetime, font size, palette and direction.
type CombatTextKind int

const (
	CombatTextDamage CombatTextKind = iota
	CombatTextEnergyAdd
	CombatTextEnergyRemove
	CombatTextFreeze
)

// CombatTextRequest is published with add_combat_text; the text system turns
// it into a CombatText.
type CombatTextRequest struct {
	Kind     CombatTextKind
	Text     string
	Position utils.Vec2
}

// CombatText is a pooled floating label.
type CombatText struct {
	Kind        CombatTextKind
	Text        string
	Position    utils.Vec2
	Direction   utils.Vec2
	Speed       float64
	TTL         float64
	OriginalTTL float64
	Color       color.RGBA
	FontSize    int
}

// Alpha fades from 255 to 0 with the remaining lifetime.
func (c *CombatText) Alpha() uint8 {
	return fadeAlpha(c.TTL, c.OriginalTTL)
}

func fadeAlpha(ttl, original float64) uint8 {
	if original <= 0 || ttl <= 0 {
		return 0
	}
	return uint8(utils.Clamp(255*ttl/original, 0, 255))
}
