package isomap

import (
	"fmt"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/pkg/utils"
)

// Grid owns every tile of one map. Tiles are created once per map generation
// and never removed during a session.
type Grid struct {
	Cols, Rows int
	Start      Index
	Goal       Index
	Geometry   Geometry

	tiles []*Tile
}

// NewGrid builds the tiles of a generated map. Layer dimensions that do not
// match the configured column and row count are a configuration error.
func NewGrid(cfg *MapConfig, geo Geometry) *Grid {
	checkLayer := func(name string, layer [][]int) {
		if len(layer) != cfg.Rows {
			panic(fmt.Sprintf("isomap: %s layer has %d rows, expected %d", name, len(layer), cfg.Rows))
		}
		for r, row := range layer {
			if len(row) != cfg.Cols {
				panic(fmt.Sprintf("isomap: %s layer row %d has %d columns, expected %d", name, r, len(row), cfg.Cols))
			}
		}
	}
	checkLayer("floor", cfg.FloorLayer)
	checkLayer("collision", cfg.CollisionLayer)

	g := &Grid{
		Cols:     cfg.Cols,
		Rows:     cfg.Rows,
		Start:    cfg.Start.Main,
		Goal:     cfg.Goal.Main,
		Geometry: geo,
		tiles:    make([]*Tile, cfg.Cols*cfg.Rows),
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			idx := Index{Col: col, Row: row}
			g.tiles[row*cfg.Cols+col] = newTile(
				idx, geo,
				cfg.FloorLayer[row][col],
				cfg.CollisionLayer[row][col],
				config.PlacedNone,
				DepthOf(idx),
			)
		}
	}
	return g
}

// DepthOf returns the back-to-front depth token of a cell. Cells further down
// the isometric diagonal get larger values.
func DepthOf(idx Index) int {
	return config.TileDepthStart + idx.Col + idx.Row
}

// InBounds reports whether idx lies on the grid.
func (g *Grid) InBounds(idx Index) bool {
	return idx.Col >= 0 && idx.Col < g.Cols && idx.Row >= 0 && idx.Row < g.Rows
}

// Tile returns the tile at idx. Out of range indexes are a programmer error.
func (g *Grid) Tile(idx Index) *Tile {
	if !g.InBounds(idx) {
		panic("isomap: tile index out of range: " + idx.String())
	}
	return g.tiles[idx.Row*g.Cols+idx.Col]
}

// Tiles returns every tile in row-major order.
func (g *Grid) Tiles() []*Tile {
	return g.tiles
}

// CanPlace reports whether the tile at idx accepts a new object.
func (g *Grid) CanPlace(idx Index) bool {
	return g.Tile(idx).CanPlace()
}

// CanWalk reports whether enemies may cross the tile at idx.
func (g *Grid) CanWalk(idx Index) bool {
	return g.Tile(idx).CanWalk()
}

// SetPlaced writes the placed-object layer at idx.
func (g *Grid) SetPlaced(idx Index, kind int) {
	g.Tile(idx).SetPlaced(kind)
}

// TileAt returns the tile whose diamond contains the screen point.
func (g *Grid) TileAt(p utils.Vec2) (*Tile, bool) {
	for _, t := range g.tiles {
		if t.ContainsPoint(p) {
			return t, true
		}
	}
	return nil, false
}

// CollisionGrid derives the pathfinding input: a cell is blocked when either
// its collision layer or its placed layer is set.
func (g *Grid) CollisionGrid() *CollisionGrid {
	cg := NewCollisionGrid(g.Cols, g.Rows)
	for _, t := range g.tiles {
		if t.Collision != config.CollisionNone || t.Placed != config.PlacedNone {
			cg.SetBlocked(t.Index, true)
		}
	}
	return cg
}

// ProposedCollisionGrid is CollisionGrid with candidate additionally blocked.
func (g *Grid) ProposedCollisionGrid(candidate Index) *CollisionGrid {
	cg := g.CollisionGrid()
	cg.SetBlocked(candidate, true)
	return cg
}

// GoalPath returns the route from idx to the goal on the current grid.
func (g *Grid) GoalPath(from Index) []Index {
	return FindPath(g.CollisionGrid(), from, g.Goal)
}

// HasRoute reports whether the canonical start still reaches the goal on cg.
func (g *Grid) HasRoute(cg *CollisionGrid) bool {
	return len(FindPath(cg, g.Start, g.Goal)) > 0
}
