// internal/defs/towers.go
package defs

import (
	"image/color"

	"go-bunny-defense/internal/config"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type         TowerType `json:"type"`
	Name         string    `json:"name"`
	Range        float64   `json:"range"`         // pixels from the tile center
	Damage       int       `json:"damage"`        // base damage, varied per hit
	FireInterval float64   `json:"fire_interval"` // seconds between shots, jittered per tower
	Cost         int       `json:"cost"`
	BulletSpeed  float64   `json:"bullet_speed"`
	BulletColor  string    `json:"bullet_color"`
	Effect       Effect    `json:"effect,omitempty"`
	// Placed is the value written to the tile's placed layer.
	Placed int `json:"placed"`
}

// BulletRGBA returns the bullet fill color.
func (t TowerDefinition) BulletRGBA() color.RGBA {
	c, _ := NamedColor(t.BulletColor)
	return c
}

func defaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			Type:         TowerSunFlower,
			Name:         "sun flower",
			Range:        160,
			Damage:       30,
			FireInterval: 0.9,
			Cost:         5,
			BulletSpeed:  420,
			BulletColor:  "gold",
			Placed:       config.PlacedSunFlower,
		},
		{
			Type:         TowerFreezeFlower,
			Name:         "freeze flower",
			Range:        130,
			Damage:       12,
			FireInterval: 1.2,
			Cost:         8,
			BulletSpeed:  420,
			BulletColor:  "lightskyblue",
			Effect:       EffectFreeze,
			Placed:       config.PlacedIceFlower,
		},
	}
}
