// internal/defs/types.go
package defs

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// TowerType names a placeable tower.
type TowerType string

const (
	TowerSunFlower    TowerType = "sun_flower"
	TowerFreezeFlower TowerType = "freeze_flower"
)

// Effect is the status effect a bullet applies on hit.
type Effect string

const (
	EffectNone   Effect = ""
	EffectFreeze Effect = "freeze"
)

// NamedColor resolves a CSS color name. Unknown names fall back to white and
// report false.
func NamedColor(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return colornames.White, false
	}
	return c, true
}
