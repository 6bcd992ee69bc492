package component

import (
	"image/color"

	"go-bunny-defense/pkg/utils"
)

// Particle is a pooled short lived dot.
type Particle struct {
	Position    utils.Vec2
	Direction   utils.Vec2
	Velocity    utils.Vec2
	Speed       float64
	Size        float64
	TTL         float64
	OriginalTTL float64
	Color       color.RGBA
	HasGravity  bool
	Gravity     float64
}

// Alpha fades the particle's own alpha with the remaining lifetime.
func (p *Particle) Alpha() uint8 {
	return uint8(float64(fadeAlpha(p.TTL, p.OriginalTTL)) * float64(p.Color.A) / 255)
}
