package system

import (
	"math"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/utils"
	putils "go-bunny-defense/pkg/utils"
)

// FindWeakestInRange returns the living enemy with the lowest current health
// whose center is within reach of from. Ties go to the first one in spawn
// order. Line of sight is not checked.
func FindWeakestInRange(enemies []*component.Enemy, from putils.Vec2, reach float64) *component.Enemy {
	var weakest *component.Enemy
	weakestHP := math.MaxInt
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		if from.DistanceTo(e.Center()) > reach {
			continue
		}
		if e.HP < weakestHP {
			weakest = e
			weakestHP = e.HP
		}
	}
	return weakest
}

// RollDamage varies a bullet's base damage by up to half in either direction.
func RollDamage(rng *utils.PRNGService, base int) int {
	return rng.VariableInt(base, base/config.BulletDamageVariation)
}
