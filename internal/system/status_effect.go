// internal/system/status_effect.go
package system

import (
	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/event"
)

// tryFreeze rolls the freeze chance for a hit carrying the freeze effect.
// Already frozen and immune enemies are skipped without a roll.
func (s *EnemySystem) tryFreeze(e *component.Enemy) {
	if e.Freeze.Active || e.FreezeImmune {
		return
	}
	if !s.rng.Percent(s.FreezeChance) {
		return
	}
	e.Freeze = component.FreezeEffect{Active: true}
	s.bus.Publish(event.New(event.AddCombatText, event.Args{
		event.ArgCombatText: component.CombatTextRequest{
			Kind:     component.CombatTextFreeze,
			Text:     "~freeze~",
			Position: e.Center(),
		},
	}))
}

// updateFreeze sheds a sparkle every frame while frozen and thaws the enemy
// after the freeze duration.
func (s *EnemySystem) updateFreeze(e *component.Enemy, deltaTime float64) {
	if !e.Freeze.Active {
		return
	}
	s.bus.Publish(event.New(event.EmitParticle, event.Args{
		event.ArgParticles: []component.Particle{FreezeSparkle(s.rng, e.Center())},
	}))
	e.Freeze.Elapsed += deltaTime
	if e.Freeze.Elapsed >= config.FreezeDuration {
		e.Freeze = component.FreezeEffect{}
	}
}
