package app

import (
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/render"
	putils "go-bunny-defense/pkg/utils"
)

func floorSprite(floor int) string {
	switch floor {
	case config.FloorStart:
		return render.SpriteStart
	case config.FloorGoal:
		return render.SpriteGoal
	default:
		return render.SpriteGrass
	}
}

func collisionSprite(collision int) string {
	switch collision {
	case config.CollisionTall:
		return render.SpriteTreeTall
	case config.CollisionShort:
		return render.SpriteTreeShort
	default:
		return ""
	}
}

func (g *Game) drawFloor(q *render.Queue) {
	for _, t := range g.Grid.Tiles() {
		q.Image(render.CategoryFloor, floorSprite(t.Floor), t.Position, t.Depth)
	}
}

// drawCollisionLayer queues the trees two cells high so they overlap the
// cell behind them.
func (g *Game) drawCollisionLayer(q *render.Queue) {
	for _, t := range g.Grid.Tiles() {
		if sprite := collisionSprite(t.Collision); sprite != "" {
			q.Image(render.CategoryCollision, sprite, t.TwoHighPosition, t.Depth)
		}
	}
}

// drawFences lines the back edges of the map: down the first column and
// along the first row.
func (g *Game) drawFences(q *render.Queue) {
	w, h := config.TileRenderWidth, config.TileRenderHeight
	for _, t := range g.Grid.Tiles() {
		if t.Index.Col == 0 {
			q.Image(render.CategoryFenceLeft, render.SpriteFenceLeft,
				putils.Vec2{X: t.Position.X - w/2, Y: t.Position.Y - h*1.5}, 0)
		}
		if t.Index.Row == 0 {
			q.Image(render.CategoryFenceTop, render.SpriteFenceTop,
				putils.Vec2{X: t.Position.X + w/2, Y: t.Position.Y - h*1.5}, 0)
		}
	}
}

func (g *Game) drawSelector(q *render.Queue) {
	if !g.overMap {
		return
	}
	t := g.Grid.Tile(g.hover)
	q.Polygon(render.CategorySelector, t.Points[:], config.SelectorColor, config.SelectorStrokeWidth, t.Depth)
}

// drawPlacementPreview shows the armed tower: following the cursor off the
// map, as a ghost on a valid tile, red on an occupied tile and orange where
// it would cut the path.
func (g *Game) drawPlacementPreview(q *render.Queue) {
	if g.Selected == nil {
		return
	}
	sprite := string(*g.Selected)

	if !g.overMap {
		pos := g.cursor.Sub(putils.Vec2{X: config.TileRenderWidth / 2, Y: config.TileRenderHeight / 2})
		q.Image(render.CategoryCursorGhost, sprite, pos, 0)
		return
	}

	t := g.Grid.Tile(g.hover)
	switch {
	case !g.Grid.CanPlace(g.hover) || g.hover == g.Grid.Start || g.hover == g.Grid.Goal:
		q.Polygon(render.CategoryCantPlace, t.Points[:], config.CantPlaceColor, 0, t.Depth)
	case !g.Grid.HasRoute(g.Grid.ProposedCollisionGrid(g.hover)):
		q.Polygon(render.CategoryCantPlace, t.Points[:], config.BlocksColor, 0, t.Depth)
	default:
		q.Image(render.CategoryPlaceablePreview, sprite, t.Position, t.Depth)
	}
}
