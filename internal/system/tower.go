package system

import (
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/entity"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/utils"
	"go-bunny-defense/pkg/isomap"
	"go-bunny-defense/pkg/logger"
)

// TowerSystem picks targets for placed towers and fires them on their timers.
type TowerSystem struct {
	world *entity.World
	grid  *isomap.Grid
	bus   *event.Bus
	lib   *defs.Library
	rng   *utils.PRNGService
	log   *logrus.Entry
}

func NewTowerSystem(world *entity.World, grid *isomap.Grid, bus *event.Bus, lib *defs.Library, rng *utils.PRNGService) *TowerSystem {
	return &TowerSystem{
		world: world,
		grid:  grid,
		bus:   bus,
		lib:   lib,
		rng:   rng,
		log:   logger.For("tower"),
	}
}

// Build creates a tower of type t on tile. It does not validate the tile;
// that is the caller's job. An unknown type panics.
func (s *TowerSystem) Build(t defs.TowerType, tile *isomap.Tile) *component.Tower {
	def := s.lib.Tower(t)
	tw := &component.Tower{
		ID:           s.world.NewEntity(),
		Type:         t,
		Tile:         tile.Index,
		Center:       tile.Center(),
		Range:        def.Range,
		FireInterval: s.rng.VariableFloat(def.FireInterval, def.FireInterval/config.FireRateJitterDivisor),
	}
	s.world.AddTower(tw)
	s.log.WithFields(logrus.Fields{
		"id":       tw.ID,
		"type":     t,
		"tile":     tile.Index.String(),
		"interval": tw.FireInterval,
	}).Info("tower built")
	return tw
}

// Update retargets every tower to the weakest enemy in range, then ticks its
// fire timer.
func (s *TowerSystem) Update(deltaTime float64) {
	for _, tw := range s.world.Towers {
		if target := FindWeakestInRange(s.world.Enemies, tw.Center, tw.Range); target != nil {
			tw.SetTarget(target.ID, target.Center())
		} else {
			tw.ClearTarget()
		}
		s.Tick(tw, deltaTime)
	}
}

// Tick accumulates time and shoots once the interval is reached. Without a
// target the timer is held at the interval so the next target is shot at
// right away.
func (s *TowerSystem) Tick(tw *component.Tower, deltaTime float64) {
	tw.Elapsed += deltaTime
	if tw.Elapsed < tw.FireInterval {
		return
	}
	if !tw.HasTarget {
		tw.Elapsed = tw.FireInterval
		return
	}
	tw.Elapsed = 0

	def := s.lib.Tower(tw.Type)
	s.bus.Publish(event.New(event.ShootBullet, event.Args{
		event.ArgTower:  tw,
		event.ArgOrigin: tw.Center,
		event.ArgTarget: tw.TargetPos,
		event.ArgPayload: component.BulletPayload{
			Tower:  tw.Type,
			Damage: def.Damage,
			Effect: def.Effect,
			Color:  def.BulletRGBA(),
			Speed:  def.BulletSpeed,
		},
	}))
}

// Draw queues the placed flowers.
func (s *TowerSystem) Draw(q *render.Queue) {
	for _, tw := range s.world.Towers {
		tile := s.grid.Tile(tw.Tile)
		q.Image(render.CategoryPlaced, string(tw.Type), tile.Position, tile.Depth)
	}
}
