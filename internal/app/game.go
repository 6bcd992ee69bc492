// internal/app/game.go
package app

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/entity"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/system"
	"go-bunny-defense/internal/utils"
	"go-bunny-defense/pkg/isomap"
	"go-bunny-defense/pkg/logger"
	putils "go-bunny-defense/pkg/utils"
)

// Game holds one session: the map, the entities and every system, wired
// together through one event bus.
type Game struct {
	Map     *isomap.MapConfig
	Grid    *isomap.Grid
	World   *entity.World
	Library *defs.Library
	Bus     *event.Bus
	Rng     *utils.PRNGService
	Debug   bool

	EnemySystem      *system.EnemySystem
	TowerSystem      *system.TowerSystem
	BulletSystem     *system.BulletSystem
	WaveSystem       *system.WaveSystem
	EnergySystem     *system.EnergySystem
	CombatTextSystem *system.CombatTextSystem
	ParticleSystem   *system.ParticleSystem
	StatsSystem      *system.StatsSystem

	// Selected is the tower type armed for placement, if any.
	Selected   *defs.TowerType
	cursor     putils.Vec2
	hover      isomap.Index
	overMap    bool
	over       bool
	outcome    component.Outcome
	statusText string
	log        *logrus.Entry
}

// NewGame generates a map and builds a fresh session on it.
func NewGame(lib *defs.Library, rng *utils.PRNGService, debug bool) (*Game, error) {
	cfg, err := isomap.Generate(rng, config.ColumnCount, config.RowCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate map")
	}
	return NewGameOnMap(cfg, lib, rng, debug), nil
}

// NewGameOnMap builds a session on an existing layout.
func NewGameOnMap(cfg *isomap.MapConfig, lib *defs.Library, rng *utils.PRNGService, debug bool) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	bus := event.NewBus()
	world := entity.NewWorld()
	grid := isomap.NewGrid(cfg, isomap.DefaultGeometry())

	g := &Game{
		Map:     cfg,
		Grid:    grid,
		World:   world,
		Library: lib,
		Bus:     bus,
		Rng:     rng,
		Debug:   debug,
		log:     logger.For("game"),
	}
	g.EnergySystem = system.NewEnergySystem(bus)
	g.WaveSystem = system.NewWaveSystem(lib, bus, world.Stats)
	g.EnemySystem = system.NewEnemySystem(world, grid, bus, rng)
	g.TowerSystem = system.NewTowerSystem(world, grid, bus, lib, rng)
	g.BulletSystem = system.NewBulletSystem(bus, rng)
	g.CombatTextSystem = system.NewCombatTextSystem(bus, rng)
	g.ParticleSystem = system.NewParticleSystem(bus)
	g.StatsSystem = system.NewStatsSystem(bus, world.Stats)

	bus.Subscribe("game", &GameEventListener{game: g})

	g.log.WithFields(logrus.Fields{
		"start": grid.Start.String(),
		"goal":  grid.Goal.String(),
		"waves": len(lib.Waves),
	}).Info("game created")
	return g
}

// GameEventListener records the end of the session.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) bool {
	if e.Name != event.GameStatusChanged {
		return false
	}
	l.game.over = true
	l.game.outcome, _ = event.Get[component.Outcome](e, event.ArgOutcome)
	l.game.statusText, _ = event.Get[string](e, event.ArgStatusText)
	return true
}

// Over reports whether the session ended, with its outcome and status text.
func (g *Game) Over() (bool, component.Outcome, string) {
	return g.over, g.outcome, g.statusText
}

// Stats returns the per-wave tally.
func (g *Game) Stats() *component.Stats {
	return g.World.Stats
}

// Energy returns the spendable energy.
func (g *Game) Energy() int {
	return g.EnergySystem.Energy
}

// Escaped returns how many enemies reached the goal.
func (g *Game) Escaped() int {
	return g.WaveSystem.Escaped
}

// Update advances the simulation by deltaTime seconds, capped to keep a
// stalled frame from tunnelling enemies through tiles.
func (g *Game) Update(deltaTime float64) {
	if g.over {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	g.EnergySystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.TowerSystem.Update(deltaTime)
	g.BulletSystem.Update(deltaTime)
	g.BulletSystem.Collide(g.World.Enemies)
	g.EnemySystem.Update(deltaTime)
	g.CombatTextSystem.Update(deltaTime)
	g.ParticleSystem.Update(deltaTime)
}

// Draw queues the whole board for this frame.
func (g *Game) Draw(q *render.Queue) {
	g.drawFloor(q)
	g.drawFences(q)
	g.drawSelector(q)
	g.TowerSystem.Draw(q)
	g.BulletSystem.Draw(q)
	g.WaveSystem.Draw(q)
	g.EnemySystem.Draw(q, g.Debug)
	g.drawCollisionLayer(q)
	g.drawPlacementPreview(q)
	g.CombatTextSystem.Draw(q)
	g.ParticleSystem.Draw(q)
}
