// internal/system/movement.go
package system

import (
	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
)

// advanceWaypoint moves the enemy's target to the next path cell once the
// current one is reached. It reports true when the path is exhausted.
func (s *EnemySystem) advanceWaypoint(e *component.Enemy) bool {
	if e.Target.DistanceTo(e.Position) > config.EnemyReachedDistance {
		return false
	}
	if len(e.Path) == 0 {
		return true
	}
	next := e.Path[0]
	e.Path = e.Path[1:]
	e.TargetTile = next
	e.Target = s.grid.Tile(next).Position
	return false
}

// move walks the enemy toward its target. A step that would pass the target
// lands on it instead.
func (s *EnemySystem) move(e *component.Enemy, deltaTime float64) {
	e.Direction = e.Target.Sub(e.Position)
	if e.Direction.IsZero() {
		return
	}

	dist := e.Direction.Len()
	step := e.Speed * e.Freeze.SpeedMultiplier() * deltaTime
	if step >= dist {
		e.Position = e.Target
	} else {
		e.Position = e.Position.Add(e.Direction.Normalize().Scale(step))
	}
	e.Facing = component.FacingFor(e.Direction, e.Facing)
}
