package system

import (
	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/event"
)

// StatsSystem feeds the tally with what the wave scheduler does not track:
// spawns, placements, shots and damage.
type StatsSystem struct {
	stats *component.Stats
}

func NewStatsSystem(bus *event.Bus, stats *component.Stats) *StatsSystem {
	s := &StatsSystem{stats: stats}
	bus.Subscribe("stats_system", s)
	return s
}

func (s *StatsSystem) OnEvent(e event.Event) bool {
	switch e.Name {
	case event.SpawnEnemy:
		tpl, ok := event.Get[defs.WaveDefinition](e, event.ArgTemplate)
		if !ok {
			return false
		}
		s.stats.For(tpl.Wave, tpl.Name).Spawned++
		return true
	case event.TowerPlaced:
		tw, ok := event.Get[*component.Tower](e, event.ArgTower)
		if !ok {
			return false
		}
		s.stats.Tower(tw.Type).Placed++
		return true
	case event.ShootBullet:
		payload, ok := event.Get[component.BulletPayload](e, event.ArgPayload)
		if !ok {
			return false
		}
		s.stats.Tower(payload.Tower).Shots++
		return true
	case event.BulletHit:
		payload, _ := event.Get[component.BulletPayload](e, event.ArgPayload)
		damage, ok := event.Get[int](e, event.ArgDamage)
		if !ok {
			return false
		}
		ts := s.stats.Tower(payload.Tower)
		ts.Hits++
		ts.Damage += damage
		s.stats.TotalDamage += damage
		return true
	}
	return false
}
