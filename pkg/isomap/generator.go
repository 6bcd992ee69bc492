package isomap

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"go-bunny-defense/internal/config"
)

// Rand is the randomness the generator needs.
type Rand interface {
	Intn(n int) int
	IntRange(lo, hi int) int
}

// QuadrantName identifies one of the four map regions.
type QuadrantName int

const (
	TopLeft QuadrantName = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q QuadrantName) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("quadrant(%d)", int(q))
	}
}

// diagonal maps every quadrant to the one diagonally opposite.
var diagonal = map[QuadrantName]QuadrantName{
	TopLeft:     BottomRight,
	TopRight:    BottomLeft,
	BottomLeft:  TopRight,
	BottomRight: TopLeft,
}

// Quadrant is a square region of the grid with one reserved main cell.
type Quadrant struct {
	Name   QuadrantName
	Origin Index
	Size   int
	Main   Index
}

// Contains reports whether idx lies inside the quadrant.
func (q Quadrant) Contains(idx Index) bool {
	return idx.Col >= q.Origin.Col && idx.Col < q.Origin.Col+q.Size &&
		idx.Row >= q.Origin.Row && idx.Row < q.Origin.Row+q.Size
}

func (q Quadrant) randomCell(rng Rand) Index {
	return Index{
		Col: q.Origin.Col + rng.Intn(q.Size),
		Row: q.Origin.Row + rng.Intn(q.Size),
	}
}

// MapConfig is one generated map layout: the start quadrant, the diagonally
// opposite goal quadrant, the two remaining quadrants and the initial layers.
type MapConfig struct {
	Cols, Rows     int
	Start          Quadrant
	Goal           Quadrant
	Remaining      [2]Quadrant
	FloorLayer     [][]int
	CollisionLayer [][]int
}

// Quadrants returns all four quadrants, start and goal first.
func (c *MapConfig) Quadrants() []Quadrant {
	return []Quadrant{c.Start, c.Goal, c.Remaining[0], c.Remaining[1]}
}

func newQuadrants(rng Rand, cols, rows int) []Quadrant {
	if cols != rows {
		panic(fmt.Sprintf("isomap: grid must be square, got %dx%d", cols, rows))
	}
	if cols < 2 || cols%2 != 0 {
		panic(fmt.Sprintf("isomap: grid size must be even and at least 2, got %d", cols))
	}
	half := cols / 2
	origins := []Index{{0, 0}, {half, 0}, {0, half}, {half, half}}
	quadrants := make([]Quadrant, len(origins))
	for i, origin := range origins {
		q := Quadrant{Name: QuadrantName(i), Origin: origin, Size: half}
		q.Main = q.randomCell(rng)
		quadrants[i] = q
	}
	return quadrants
}

// Generate rolls a new map. Obstacles are re-rolled until the start and goal
// cells are connected; exhausting the attempt budget returns an error.
func Generate(rng Rand, cols, rows int) (*MapConfig, error) {
	quadrants := newQuadrants(rng, cols, rows)

	start := QuadrantName(rng.Intn(len(quadrants)))
	goal := diagonal[start]
	var remaining [2]Quadrant
	for _, q := range quadrants {
		if q.Name != start && q.Name != goal {
			remaining[0] = q
			remaining[1] = quadrants[diagonal[q.Name]]
			break
		}
	}

	cfg := &MapConfig{
		Cols:       cols,
		Rows:       rows,
		Start:      quadrants[start],
		Goal:       quadrants[goal],
		Remaining:  remaining,
		FloorLayer: floorLayer(cols, rows, quadrants[start].Main, quadrants[goal].Main),
	}

	for attempt := 1; attempt <= config.MapGenerationAttempts; attempt++ {
		layer := emptyLayer(cols, rows)
		applyObstacles(rng, layer, cfg.Start, config.StartQuadrantObstaclePercent)
		applyObstacles(rng, layer, cfg.Goal, config.StartQuadrantObstaclePercent)
		for _, q := range cfg.Remaining {
			pct := rng.IntRange(config.MinQuadrantObstaclePercent, config.MaxQuadrantObstaclePercent)
			applyObstacles(rng, layer, q, pct)
		}
		if connected(layer, cfg.Start.Main, cfg.Goal.Main) {
			cfg.CollisionLayer = layer
			return cfg, nil
		}
	}
	return nil, errors.Errorf("isomap: no connected layout between %s and %s after %d attempts",
		cfg.Start.Main, cfg.Goal.Main, config.MapGenerationAttempts)
}

func emptyLayer(cols, rows int) [][]int {
	layer := make([][]int, rows)
	for r := range layer {
		layer[r] = make([]int, cols)
	}
	return layer
}

func floorLayer(cols, rows int, start, goal Index) [][]int {
	layer := emptyLayer(cols, rows)
	for r := range layer {
		for c := range layer[r] {
			layer[r][c] = config.FloorGrass
		}
	}
	layer[start.Row][start.Col] = config.FloorStart
	layer[goal.Row][goal.Col] = config.FloorGoal
	return layer
}

// applyObstacles marks pct percent of the quadrant's cells, never its main cell.
func applyObstacles(rng Rand, layer [][]int, q Quadrant, pct int) {
	cells := q.Size * q.Size
	count := int(math.Ceil(float64(cells) * float64(pct) / 100))
	if count > cells-1 {
		count = cells - 1
	}
	picked := make(map[Index]struct{}, count)
	for len(picked) < count {
		idx := q.randomCell(rng)
		if idx == q.Main {
			continue
		}
		if _, dup := picked[idx]; dup {
			continue
		}
		picked[idx] = struct{}{}
		if rng.Intn(2) == 0 {
			layer[idx.Row][idx.Col] = config.CollisionTall
		} else {
			layer[idx.Row][idx.Col] = config.CollisionShort
		}
	}
}

func connected(layer [][]int, start, goal Index) bool {
	cg := NewCollisionGrid(len(layer[0]), len(layer))
	for r, row := range layer {
		for c, v := range row {
			if v != config.CollisionNone {
				cg.SetBlocked(Index{Col: c, Row: r}, true)
			}
		}
	}
	return len(FindPath(cg, start, goal)) > 0
}
