// internal/component/status_effect.go
package component

import "go-bunny-defense/internal/config"

// FreezeEffect indicates that an enemy is slowed.
type FreezeEffect struct {
	Active  bool
	Elapsed float64 // time spent frozen so far
}

// SpeedMultiplier returns the factor applied to move speed: 1 - 1/k while
// frozen, 1 otherwise.
func (f FreezeEffect) SpeedMultiplier() float64 {
	if !f.Active {
		return 1
	}
	return 1 - 1/config.FreezeSpeedReductionParts
}
