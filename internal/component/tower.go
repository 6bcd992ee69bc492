// internal/component/tower.go
package component

import (
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/pkg/isomap"
	"go-bunny-defense/pkg/utils"
)

// Tower is a placed flower. It never moves and is never removed.
type Tower struct {
	ID   EntityID
	Type defs.TowerType
	Tile isomap.Index
	// Center is the middle of the tile; range is measured from here.
	Center       utils.Vec2
	Range        float64
	FireInterval float64 // jittered per tower at placement
	Elapsed      float64

	// The target is a lookup, not ownership: the enemy may be gone by the
	// time the snapshot is fired at.
	HasTarget bool
	TargetID  EntityID
	TargetPos utils.Vec2
}

// SetTarget records the enemy to shoot next and where it is now.
func (t *Tower) SetTarget(id EntityID, pos utils.Vec2) {
	t.HasTarget = true
	t.TargetID = id
	t.TargetPos = pos
}

// ClearTarget forgets the current target.
func (t *Tower) ClearTarget() {
	t.HasTarget = false
	t.TargetID = 0
	t.TargetPos = utils.Vec2{}
}
