package defs

import "image/color"

// WaveDefinition is the enemy template of one wave.
type WaveDefinition struct {
	Wave         int     `json:"wave"`
	Name         string  `json:"name"`
	Speed        float64 `json:"speed"`
	HP           int     `json:"hp"`
	Count        int     `json:"count"`
	Rate         float64 `json:"rate"` // seconds between spawns
	Reward       int     `json:"reward"`
	Color        string  `json:"color"`
	FreezeImmune bool    `json:"freeze_immune,omitempty"`
}

// RGBA returns the wave's display color.
func (w WaveDefinition) RGBA() color.RGBA {
	c, _ := NamedColor(w.Color)
	return c
}

func defaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{Wave: 1, Name: "bunny", Speed: 50, HP: 100, Count: 50, Rate: 2.8, Reward: 2, Color: "palegoldenrod"},
		{Wave: 2, Name: "ice bunny", Speed: 55, HP: 225, Count: 35, Rate: 3.5, Reward: 3, Color: "cornflowerblue", FreezeImmune: true},
		{Wave: 3, Name: "fire bunny", Speed: 95, HP: 350, Count: 35, Rate: 3, Reward: 4, Color: "red"},
		{Wave: 4, Name: "stinky bunny", Speed: 45, HP: 550, Count: 40, Rate: 2.5, Reward: 5, Color: "gray"},
		{Wave: 5, Name: "rainbow bunny", Speed: 95, HP: 425, Count: 50, Rate: 2, Reward: 10, Color: "pink"},
	}
}
