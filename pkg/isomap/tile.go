package isomap

import (
	"go-bunny-defense/internal/config"
	"go-bunny-defense/pkg/utils"
)

// Geometry holds the fixed isometric projection parameters.
type Geometry struct {
	TileWidth  float64
	TileHeight float64
	OffsetX    float64
	OffsetY    float64
}

// DefaultGeometry returns the projection used by the game screen.
func DefaultGeometry() Geometry {
	return Geometry{
		TileWidth:  config.TileRenderWidth,
		TileHeight: config.TileRenderHeight,
		OffsetX:    config.TileOffsetX,
		OffsetY:    config.TileOffsetY,
	}
}

// Project returns the top-left corner of the tile's bounding box on screen.
func (g Geometry) Project(idx Index) utils.Vec2 {
	return utils.Vec2{
		X: float64(idx.Col-idx.Row)*g.TileWidth/2 + g.OffsetX,
		Y: float64(idx.Col+idx.Row)*g.TileHeight/2 + g.OffsetY,
	}
}

// Tile is one grid cell: three independent layer values plus geometry derived
// once from its index.
type Tile struct {
	Index     Index
	Floor     int
	Collision int
	Placed    int
	Depth     int

	// Position is the top-left corner of the tile's bounding box.
	Position utils.Vec2
	// TwoHighPosition is where two-cell-tall objects (trees, fences) are drawn.
	TwoHighPosition utils.Vec2
	Bounds          utils.Rect
	// Points are the diamond corners: top, left, bottom, right.
	Points [4]utils.Vec2
}

func newTile(idx Index, geo Geometry, floor, collision, placed, depth int) *Tile {
	pos := geo.Project(idx)
	bounds := utils.Rect{X: pos.X, Y: pos.Y, W: geo.TileWidth, H: geo.TileHeight}
	center := bounds.Center()
	return &Tile{
		Index:           idx,
		Floor:           floor,
		Collision:       collision,
		Placed:          placed,
		Depth:           depth,
		Position:        pos,
		TwoHighPosition: utils.Vec2{X: pos.X, Y: pos.Y - geo.TileHeight},
		Bounds:          bounds,
		Points: [4]utils.Vec2{
			{X: center.X, Y: pos.Y},
			{X: pos.X, Y: center.Y},
			{X: center.X, Y: pos.Y + geo.TileHeight},
			{X: pos.X + geo.TileWidth, Y: center.Y},
		},
	}
}

// Center returns the middle of the diamond.
func (t *Tile) Center() utils.Vec2 {
	return t.Bounds.Center()
}

// CanWalk reports whether enemies may cross the tile. Placed objects do not
// affect walkability, only the collision layer does.
func (t *Tile) CanWalk() bool {
	return t.Collision == config.CollisionNone
}

// CanPlace reports whether a new object may be placed on the tile.
func (t *Tile) CanPlace() bool {
	return t.CanWalk() && t.Placed == config.PlacedNone
}

// SetPlaced writes the placed-object layer.
func (t *Tile) SetPlaced(kind int) {
	t.Placed = kind
}

// ContainsPoint is the diamond hit test: |dx|/halfWidth + |dy|/halfHeight <= 1.
func (t *Tile) ContainsPoint(p utils.Vec2) bool {
	c := t.Center()
	dx := p.X - c.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - c.Y
	if dy < 0 {
		dy = -dy
	}
	return dx/(t.Bounds.W/2)+dy/(t.Bounds.H/2) <= 1
}
