package system

import (
	"fmt"
	"slices"

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
	putils "go-bunny-defense/pkg/utils"
)

// EnemySystem spawns, walks, damages and retires enemies.
type EnemySystem struct {
	world *entity.World
	grid  *isomap.Grid
	bus   *event.Bus
	rng   *utils.PRNGService
	log   *logrus.Entry

	// FreezeChance is the percent chance a freezing hit slows its target.
	FreezeChance int
}

func NewEnemySystem(world *entity.World, grid *isomap.Grid, bus *event.Bus, rng *utils.PRNGService) *EnemySystem {
	s := &EnemySystem{
		world:        world,
		grid:         grid,
		bus:          bus,
		rng:          rng,
		log:          logger.For("enemy"),
		FreezeChance: config.FreezeChancePercent,
	}
	bus.Subscribe("enemy_system", s)
	return s
}

func (s *EnemySystem) OnEvent(e event.Event) bool {
	switch e.Name {
	case event.SpawnEnemy:
		tpl, ok := event.Get[defs.WaveDefinition](e, event.ArgTemplate)
		if !ok {
			return false
		}
		s.Spawn(tpl)
		return true
	case event.BulletHit:
		enemy, ok := event.Get[*component.Enemy](e, event.ArgEnemy)
		if !ok {
			return false
		}
		damage, _ := event.Get[int](e, event.ArgDamage)
		payload, _ := event.Get[component.BulletPayload](e, event.ArgPayload)
		s.ApplyDamage(enemy, damage, payload.Effect)
		return true
	case event.TowerPlaced:
		s.RerouteAll()
		return true
	}
	return false
}

// Spawn creates an enemy from a wave template at the start cell. Health and
// speed vary slightly per enemy.
func (s *EnemySystem) Spawn(tpl defs.WaveDefinition) *component.Enemy {
	hp := s.rng.VariableInt(tpl.HP, tpl.HP/config.EnemyHealthVariation)
	if hp < 1 {
		hp = 1
	}
	speed := s.rng.VariableFloat(tpl.Speed, tpl.Speed/config.EnemySpeedVariation)

	start := s.grid.Tile(s.grid.Start).Position
	e := &component.Enemy{
		ID:           s.world.NewEntity(),
		Wave:         tpl.Wave,
		Name:         tpl.Name,
		HP:           hp,
		MaxHP:        hp,
		Speed:        speed,
		Reward:       tpl.Reward,
		Color:        tpl.RGBA(),
		FreezeImmune: tpl.FreezeImmune,
		Position:     start,
		Target:       start,
		TargetTile:   s.grid.Start,
	}
	if path := s.grid.GoalPath(s.grid.Start); len(path) > 0 {
		e.Path = path[1:]
	}
	s.world.AddEnemy(e)

	s.log.WithFields(logrus.Fields{
		"id":    e.ID,
		"wave":  e.Wave,
		"hp":    e.HP,
		"speed": e.Speed,
	}).Debug("enemy spawned")
	return e
}

// Update advances every enemy and removes the ones that died or escaped. The
// pass runs over a copy so removal never skips an enemy.
func (s *EnemySystem) Update(deltaTime float64) {
	for _, e := range slices.Clone(s.world.Enemies) {
		s.updateEnemy(e, deltaTime)
		if e.Alive() {
			continue
		}
		s.world.RemoveEnemy(e.ID)
		s.bus.Publish(event.New(event.EnemyProcessed, event.Args{event.ArgEnemy: e}))
	}
}

func (s *EnemySystem) updateEnemy(e *component.Enemy, deltaTime float64) {
	s.updateDeath(e)
	if !e.Alive() {
		return
	}

	if s.advanceWaypoint(e) {
		e.Escaped = true
		s.log.WithField("id", e.ID).Debug("enemy escaped")
		s.bus.Publish(event.New(event.EnemyEscaped, event.Args{event.ArgEnemy: e}))
		return
	}
	s.move(e, deltaTime)
	s.updateFreeze(e, deltaTime)
}

// ApplyDamage subtracts damage from a living enemy, rolls the freeze effect
// and announces the hit as floating text.
func (s *EnemySystem) ApplyDamage(e *component.Enemy, damage int, effect defs.Effect) {
	if !e.Alive() {
		return
	}
	e.HP -= damage

	if effect == defs.EffectFreeze {
		s.tryFreeze(e)
	}
	s.bus.Publish(event.New(event.AddCombatText, event.Args{
		event.ArgCombatText: component.CombatTextRequest{
			Kind:     component.CombatTextDamage,
			Text:     fmt.Sprintf("-%d", damage),
			Position: e.Center(),
		},
	}))
	s.updateDeath(e)
}

// updateDeath announces a death exactly once.
func (s *EnemySystem) updateDeath(e *component.Enemy) {
	if e.Processed || !e.IsDead() {
		return
	}
	e.Processed = true
	s.bus.Publish(event.New(event.EnemyDied, event.Args{event.ArgEnemy: e}))
	s.bus.Publish(event.New(event.EmitParticle, event.Args{
		event.ArgParticles: DeathBurst(s.rng, e.Center(), e.Color, config.EnemyDeathParticleCount),
	}))
}

// CurrentTile returns the tile under the enemy's foot.
func (s *EnemySystem) CurrentTile(e *component.Enemy) (*isomap.Tile, bool) {
	return s.grid.TileAt(e.Foot())
}

// RerouteAll recomputes every active enemy's path from its current tile to
// the goal against the current collision grid.
func (s *EnemySystem) RerouteAll() {
	cg := s.grid.CollisionGrid()
	for _, e := range s.world.Enemies {
		if e.Alive() {
			s.reroute(e, cg)
		}
	}
}

// reroute keeps the enemy heading for the waypoint it is already walking to
// when the new path passes through it, so it never turns back. When no path
// exists the old one is kept.
func (s *EnemySystem) reroute(e *component.Enemy, cg *isomap.CollisionGrid) {
	tile, ok := s.CurrentTile(e)
	if !ok {
		return
	}
	path := isomap.FindPath(cg, tile.Index, s.grid.Goal)
	if len(path) == 0 {
		s.log.WithFields(logrus.Fields{"id": e.ID, "tile": tile.Index.String()}).Warn("no route from current tile, keeping old path")
		return
	}

	switch {
	case path[0] == e.TargetTile:
		e.Path = path[1:]
	case len(path) > 1 && path[1] == e.TargetTile:
		e.Path = path[2:]
	default:
		e.TargetTile = path[0]
		e.Target = s.grid.Tile(path[0]).Position
		e.Path = path[1:]
	}
}

// Draw queues sprites, health bars and goal path dots of the living enemies.
func (s *EnemySystem) Draw(q *render.Queue, debug bool) {
	for _, e := range s.world.Enemies {
		if !e.Alive() || e.Facing == component.FacingNone {
			continue
		}
		hurtbox := e.Hurtbox()
		depth := 0
		if tile, ok := s.CurrentTile(e); ok {
			depth = tile.Depth
			if e.Freeze.Active {
				q.Image(render.CategoryEffectsTile, render.SpriteFreezeTile, tile.Position, tile.Depth)
			}
			q.Image(render.CategoryEnemy, render.EnemySprite(e.Facing.String(), e.Wave),
				putils.Vec2{X: hurtbox.X, Y: hurtbox.Y}, tile.Depth)
			if debug {
				q.Polygon(render.CategoryDebug, tile.Points[:], config.DebugColor, config.DebugStrokeWidth, 0)
			}
		}

		bar := putils.Rect{
			X: hurtbox.X,
			Y: hurtbox.Y - config.EnemyHPBarHeight,
			W: config.EnemyHPBarWidth,
			H: config.EnemyHPBarHeight,
		}
		q.Rect(render.CategoryHPUsed, bar, config.HPUsedColor, 0, depth)
		bar.W *= e.HPFraction()
		q.Rect(render.CategoryHPRemaining, bar, config.HPLeftColor, 0, depth)

		s.drawGoalPath(q, e)

		if debug {
			q.Rect(render.CategoryDebug, hurtbox, config.DebugColor, config.DebugStrokeWidth, 0)
			q.Circle(render.CategoryDebug, e.Foot(), config.DebugCircleRadius, config.DebugColor, 0, 0)
			q.Circle(render.CategoryDebug, e.Center(), config.DebugCircleRadius, config.DebugColor, 0, 0)
		}
	}
}

func (s *EnemySystem) drawGoalPath(q *render.Queue, e *component.Enemy) {
	for _, idx := range e.Path {
		tile := s.grid.Tile(idx)
		q.Circle(render.CategoryGoalPathOuter, tile.Center(), config.GoalPathOuterRadius, config.GoalOuterColor, 0, tile.Depth)
		q.Circle(render.CategoryGoalPathInner, tile.Center(), config.GoalPathInnerRadius, config.GoalInnerColor, 0, tile.Depth)
	}
}
