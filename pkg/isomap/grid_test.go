package isomap

import (
	"testing"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/utils"
	putils "go-bunny-defense/pkg/utils"
)

// corridorConfig builds a 4x4 map whose only route runs along the top row and
// down the right column.
func corridorConfig() *MapConfig {
	cfg := &MapConfig{
		Cols:       4,
		Rows:       4,
		Start:      Quadrant{Name: TopLeft, Size: 2, Main: Index{0, 0}},
		Goal:       Quadrant{Name: BottomRight, Origin: Index{2, 2}, Size: 2, Main: Index{3, 3}},
		FloorLayer: floorLayer(4, 4, Index{0, 0}, Index{3, 3}),
		CollisionLayer: [][]int{
			{0, 0, 0, 0},
			{1, 1, 1, 0},
			{1, 1, 1, 0},
			{1, 1, 1, 0},
		},
	}
	return cfg
}

func TestGridCollisionGridIncludesPlaced(t *testing.T) {
	g := NewGrid(corridorConfig(), testGeometry())
	g.SetPlaced(Index{1, 0}, config.PlacedSunFlower)

	cg := g.CollisionGrid()
	if !cg.Blocked(Index{1, 0}) {
		t.Errorf("Expected placed tile to be blocked in collision grid")
	}
	if !cg.Blocked(Index{0, 1}) {
		t.Errorf("Expected collision tile to be blocked")
	}
	if cg.Blocked(Index{2, 0}) {
		t.Errorf("Expected empty tile to be free")
	}
	if !g.CanWalk(Index{1, 0}) {
		t.Errorf("Expected placed tile to stay walkable")
	}
}

func TestGridProposedCollisionGridLeavesTilesUntouched(t *testing.T) {
	g := NewGrid(corridorConfig(), testGeometry())
	proposed := g.ProposedCollisionGrid(Index{2, 0})
	if g.HasRoute(proposed) {
		t.Errorf("Expected blocking the corridor to cut the route")
	}
	if !g.CanPlace(Index{2, 0}) {
		t.Errorf("Expected tile to remain placeable after a proposal")
	}
	if !g.HasRoute(g.CollisionGrid()) {
		t.Errorf("Expected the real grid to keep its route")
	}
}

func TestGridTileAt(t *testing.T) {
	g := NewGrid(corridorConfig(), testGeometry())
	want := g.Tile(Index{2, 1})
	got, ok := g.TileAt(want.Center())
	if !ok || got != want {
		t.Errorf("Expected tile %s at its center, got %v", want.Index, got)
	}
	if _, ok := g.TileAt(putils.Vec2{X: -1000, Y: -1000}); ok {
		t.Errorf("Expected no tile far off the map")
	}
}

func TestGridPanicsOnMismatchedLayers(t *testing.T) {
	cfg := corridorConfig()
	cfg.CollisionLayer = cfg.CollisionLayer[:3]
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic on mismatched layer dimensions")
		}
	}()
	NewGrid(cfg, testGeometry())
}

func TestGenerateKeepsStartAndGoalClear(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := utils.NewPRNGService(seed)
		cfg, err := Generate(rng, config.ColumnCount, config.RowCount)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		g := NewGrid(cfg, DefaultGeometry())

		for _, idx := range []Index{g.Start, g.Goal} {
			tile := g.Tile(idx)
			if tile.Collision != config.CollisionNone || tile.Placed != config.PlacedNone {
				t.Errorf("seed %d: expected %s to be unobstructed", seed, idx)
			}
		}
		if g.Tile(g.Start).Floor != config.FloorStart || g.Tile(g.Goal).Floor != config.FloorGoal {
			t.Errorf("seed %d: expected start/goal floor markers", seed)
		}
		if !g.HasRoute(g.CollisionGrid()) {
			t.Errorf("seed %d: expected a route between start and goal", seed)
		}
		if diagonal[cfg.Start.Name] != cfg.Goal.Name {
			t.Errorf("seed %d: expected goal quadrant diagonally opposite start", seed)
		}
		for _, q := range cfg.Quadrants() {
			if !q.Contains(q.Main) {
				t.Errorf("seed %d: main cell %s outside quadrant %s", seed, q.Main, q.Name)
			}
		}
	}
}

func TestGenerateDistinctQuadrants(t *testing.T) {
	cfg, err := Generate(utils.NewPRNGService(7), 8, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[QuadrantName]bool{}
	for _, q := range cfg.Quadrants() {
		if seen[q.Name] {
			t.Errorf("Expected each quadrant once, %s repeated", q.Name)
		}
		seen[q.Name] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 quadrants, got %d", len(seen))
	}
}
