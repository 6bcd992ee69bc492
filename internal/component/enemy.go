package component

import (
	"image/color"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/pkg/isomap"
	"go-bunny-defense/pkg/utils"
)

// Facing is the sprite direction an enemy is drawn with.
type Facing int

const (
	FacingNone Facing = iota // not moved yet, not drawn
	FacingLeft
	FacingRight
	FacingDown
	FacingUp
)

// FacingFor maps a movement direction on screen to a sprite facing. Pure
// horizontal or vertical moves keep the previous facing.
func FacingFor(dir utils.Vec2, previous Facing) Facing {
	switch {
	case dir.X < 0 && dir.Y < 0:
		return FacingLeft
	case dir.X > 0 && dir.Y > 0:
		return FacingRight
	case dir.X < 0 && dir.Y > 0:
		return FacingDown
	case dir.X > 0 && dir.Y < 0:
		return FacingUp
	}
	return previous
}

// Enemy is one walking bunny.
type Enemy struct {
	ID           EntityID
	Wave         int
	Name         string
	HP           int
	MaxHP        int
	Speed        float64
	Reward       int
	Color        color.RGBA
	FreezeImmune bool

	// Position is the anchor: the top-left corner of the tile bounds the
	// enemy is standing on when it sits exactly on a waypoint.
	Position utils.Vec2
	// Target is the anchor of the waypoint being walked to.
	Target    utils.Vec2
	Direction utils.Vec2
	Facing    Facing
	// Path holds the remaining waypoints, next first.
	Path []isomap.Index
	// TargetTile is the cell Target belongs to.
	TargetTile isomap.Index
	Freeze     FreezeEffect

	Escaped   bool
	Processed bool // death already announced
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e.HP > 0 && !e.Escaped
}

// IsDead reports whether health ran out.
func (e *Enemy) IsDead() bool {
	return e.HP <= 0
}

// Foot is the ground point under the enemy, used for tile lookup.
func (e *Enemy) Foot() utils.Vec2 {
	return e.Position.Add(utils.Vec2{X: config.TileRenderWidth / 2, Y: config.TileRenderHeight / 2})
}

// Hurtbox is the rectangle bullets must land inside, standing on the foot.
func (e *Enemy) Hurtbox() utils.Rect {
	foot := e.Foot()
	return utils.Rect{
		X: foot.X - config.EnemyRenderWidth/2,
		Y: foot.Y - config.EnemyRenderHeight,
		W: config.EnemyRenderWidth,
		H: config.EnemyRenderHeight,
	}
}

// Center is the middle of the hurtbox. Towers aim at it and text spawns there.
func (e *Enemy) Center() utils.Vec2 {
	return e.Hurtbox().Center()
}

// HPFraction returns remaining health in [0, 1].
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return utils.Clamp(float64(e.HP)/float64(e.MaxHP), 0, 1)
}

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	default:
		return "none"
	}
}
