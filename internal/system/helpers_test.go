package system

import (
	"testing"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/entity"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/utils"
	"go-bunny-defense/pkg/isomap"
)

// gridFromRows builds a grid from a picture: 'S' start, 'G' goal, '#'
// obstacle, anything else open grass.
func gridFromRows(t *testing.T, rows ...string) *isomap.Grid {
	t.Helper()
	cfg := &isomap.MapConfig{Cols: len(rows[0]), Rows: len(rows)}
	for r, line := range rows {
		floor := make([]int, len(line))
		collision := make([]int, len(line))
		for c, ch := range line {
			floor[c] = config.FloorGrass
			switch ch {
			case 'S':
				floor[c] = config.FloorStart
				cfg.Start.Main = isomap.Index{Col: c, Row: r}
			case 'G':
				floor[c] = config.FloorGoal
				cfg.Goal.Main = isomap.Index{Col: c, Row: r}
			case '#':
				collision[c] = config.CollisionShort
			}
		}
		cfg.FloorLayer = append(cfg.FloorLayer, floor)
		cfg.CollisionLayer = append(cfg.CollisionLayer, collision)
	}
	return isomap.NewGrid(cfg, isomap.DefaultGeometry())
}

// recorder keeps every published event in order.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) bool {
	r.events = append(r.events, e)
	return false
}

func (r *recorder) count(name event.Name) int {
	n := 0
	for _, e := range r.events {
		if e.Name == name {
			n++
		}
	}
	return n
}

func (r *recorder) last(name event.Name) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Name == name {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

type fixture struct {
	world   *entity.World
	grid    *isomap.Grid
	bus     *event.Bus
	rng     *utils.PRNGService
	rec     *recorder
	enemies *EnemySystem
}

func newFixture(t *testing.T, rows ...string) *fixture {
	t.Helper()
	f := &fixture{
		world: entity.NewWorld(),
		grid:  gridFromRows(t, rows...),
		bus:   event.NewBus(),
		rng:   utils.NewPRNGService(42),
		rec:   &recorder{},
	}
	f.bus.Subscribe("recorder", f.rec)
	f.enemies = NewEnemySystem(f.world, f.grid, f.bus, f.rng)
	return f
}

func bunny() defs.WaveDefinition {
	return defs.WaveDefinition{Wave: 1, Name: "bunny", Speed: 60, HP: 100, Count: 2, Rate: 1, Reward: 3, Color: "pink"}
}

// run steps fn in fixed increments for the given simulated time.
func run(seconds, step float64, fn func(dt float64)) {
	for elapsed := 0.0; elapsed < seconds; elapsed += step {
		fn(step)
	}
}
