// internal/app/tower_management.go
package app

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/pkg/isomap"
	putils "go-bunny-defense/pkg/utils"
)

// Placement rejections. The grid is left untouched when any is returned.
var (
	ErrOutOfBounds     = errors.New("tile is outside the map")
	ErrCannotPlace     = errors.New("tile is occupied")
	ErrReservedTile    = errors.New("start and goal tiles stay clear")
	ErrBlocksPath      = errors.New("placement would cut the path to the goal")
	ErrNotEnoughEnergy = errors.New("not enough energy")
)

// CheckPlacement validates placing a tower of type t on idx without changing
// anything. An unknown tower type panics.
func (g *Game) CheckPlacement(t defs.TowerType, idx isomap.Index) error {
	def := g.Library.Tower(t)
	if !g.Grid.InBounds(idx) {
		return ErrOutOfBounds
	}
	if idx == g.Grid.Start || idx == g.Grid.Goal {
		return ErrReservedTile
	}
	if !g.Grid.CanPlace(idx) {
		return ErrCannotPlace
	}
	if !g.Grid.HasRoute(g.Grid.ProposedCollisionGrid(idx)) {
		return ErrBlocksPath
	}
	if !g.EnergySystem.CanAfford(def.Cost) {
		return ErrNotEnoughEnergy
	}
	return nil
}

// PlaceTower commits a validated placement: marks the tile, builds the tower,
// pays for it and announces it so every enemy reroutes.
func (g *Game) PlaceTower(t defs.TowerType, idx isomap.Index) (*component.Tower, error) {
	if err := g.CheckPlacement(t, idx); err != nil {
		g.log.WithFields(logrus.Fields{"type": t, "tile": idx.String()}).WithError(err).Debug("placement rejected")
		return nil, errors.Wrapf(err, "place %s at %s", t, idx)
	}

	def := g.Library.Tower(t)
	tile := g.Grid.Tile(idx)
	g.Grid.SetPlaced(idx, def.Placed)
	tw := g.TowerSystem.Build(t, tile)
	g.EnergySystem.Spend(def.Cost, tile.Position)

	g.Bus.Publish(event.New(event.TowerPlaced, event.Args{
		event.ArgTower: tw,
		event.ArgTile:  idx,
	}))
	return tw, nil
}

// Select arms a tower type for placement. Types the player cannot afford are
// refused.
func (g *Game) Select(t defs.TowerType) bool {
	def := g.Library.Tower(t)
	if !g.EnergySystem.CanAfford(def.Cost) {
		return false
	}
	g.Selected = &t
	return true
}

// Deselect disarms placement.
func (g *Game) Deselect() {
	g.Selected = nil
}

// MoveCursor records the pointer position and the tile under it.
func (g *Game) MoveCursor(p putils.Vec2) {
	g.cursor = p
	tile, ok := g.Grid.TileAt(p)
	g.overMap = ok
	if ok {
		g.hover = tile.Index
	}
}

// Hovered returns the tile under the cursor.
func (g *Game) Hovered() (isomap.Index, bool) {
	return g.hover, g.overMap
}

// Click places the armed tower on the hovered tile, or disarms when the click
// lands off the map. It reports whether a tower was placed.
func (g *Game) Click() bool {
	if g.Selected == nil {
		return false
	}
	if !g.overMap {
		g.Deselect()
		return false
	}
	if _, err := g.PlaceTower(*g.Selected, g.hover); err != nil {
		return false
	}
	g.Deselect()
	return true
}
