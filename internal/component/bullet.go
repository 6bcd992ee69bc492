package component

import (
	"image/color"

	"go-bunny-defense/internal/defs"
	"go-bunny-defense/pkg/utils"
)

// BulletPayload is what a tower attaches to each shot.
type BulletPayload struct {
	Tower  defs.TowerType
	Damage int
	Effect defs.Effect
	Color  color.RGBA
	Speed  float64
}

// Bullet is a pooled projectile flying in a straight line until its ttl ends
// or it hits.
type Bullet struct {
	Position  utils.Vec2
	Direction utils.Vec2 // normalized
	Size      float64
	TTL       float64
	Payload   BulletPayload
}

// Active reports whether the bullet is still flying.
func (b *Bullet) Active() bool {
	return b.TTL > 0
}
