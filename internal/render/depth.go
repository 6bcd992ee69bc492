package render

import (
	"cmp"
	"fmt"
)

// Layer is the broad draw band. Lower layers are drawn first.
type Layer int

const (
	LayerBackdrop      Layer = iota // fences around the map
	LayerFloor                      // floor tiles
	LayerGroundOverlay              // selector, placement hints, goal path dots
	LayerGroundEffect               // status effects painted on the floor under enemies
	LayerObject                     // obstacles, placed objects and enemies, interleaved by tile depth
	LayerOverlay                    // bullets and health bars
	LayerDebug                      // debug shapes
	LayerParticle                   // particles
	LayerCombatText                 // floating combat text
	LayerHUDText                    // wave countdown and names
	LayerCursor                     // placement ghost following the cursor off the map
)

// SubOrder separates draws sharing a layer and tile depth.
type SubOrder int

const (
	SubNone     SubOrder = iota
	SubObstacle          // collision props
	SubPlaced            // placed objects
	SubEnemy             // enemies
	SubBack              // first of a pair: outline, used bar, shadow
	SubFront             // second of a pair: fill, remaining bar, text
)

// Depth is the composite sort key of a draw request, compared field by field:
// layer, then tile depth, then sub order.
type Depth struct {
	Layer Layer
	Tile  int
	Sub   SubOrder
}

// Compare returns -1, 0 or +1 when d sorts before, with or after o.
func (d Depth) Compare(o Depth) int {
	if c := cmp.Compare(d.Layer, o.Layer); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Tile, o.Tile); c != 0 {
		return c
	}
	return cmp.Compare(d.Sub, o.Sub)
}

func (d Depth) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Layer, d.Tile, d.Sub)
}

// Category names what is being drawn; it decides the depth key.
type Category int

const (
	CategoryFenceLeft Category = iota
	CategoryFenceTop
	CategoryFloor
	CategorySelector
	CategoryCantPlace
	CategoryGoalPathOuter
	CategoryGoalPathInner
	CategoryEffectsTile
	CategoryCollision
	CategoryPlaced
	CategoryPlaceablePreview
	CategoryEnemy
	CategoryBulletOuter
	CategoryBulletInner
	CategoryHPUsed
	CategoryHPRemaining
	CategoryDebug
	CategoryParticle
	CategoryDamageTextShadow
	CategoryDamageText
	CategoryWaveTextShadow
	CategoryWaveText
	CategoryCursorGhost
)

// DepthFor maps a category and the tile depth of the cell it belongs to onto
// its sort key. Off-map categories ignore tileDepth. An unknown category is a
// programmer error and panics.
func DepthFor(category Category, tileDepth int) Depth {
	switch category {
	case CategoryFenceLeft, CategoryFenceTop:
		return Depth{Layer: LayerBackdrop}
	case CategoryFloor:
		return Depth{Layer: LayerFloor, Tile: tileDepth}
	case CategorySelector, CategoryCantPlace:
		return Depth{Layer: LayerGroundOverlay, Tile: tileDepth}
	case CategoryGoalPathOuter:
		return Depth{Layer: LayerGroundOverlay, Tile: tileDepth, Sub: SubBack}
	case CategoryGoalPathInner:
		return Depth{Layer: LayerGroundOverlay, Tile: tileDepth, Sub: SubFront}
	case CategoryEffectsTile:
		return Depth{Layer: LayerGroundEffect, Tile: tileDepth}
	case CategoryCollision:
		return Depth{Layer: LayerObject, Tile: tileDepth, Sub: SubObstacle}
	case CategoryPlaced, CategoryPlaceablePreview:
		return Depth{Layer: LayerObject, Tile: tileDepth, Sub: SubPlaced}
	case CategoryEnemy:
		return Depth{Layer: LayerObject, Tile: tileDepth, Sub: SubEnemy}
	case CategoryBulletOuter:
		return Depth{Layer: LayerOverlay, Sub: SubBack}
	case CategoryBulletInner:
		return Depth{Layer: LayerOverlay, Sub: SubFront}
	case CategoryHPUsed:
		return Depth{Layer: LayerOverlay, Tile: tileDepth, Sub: SubBack}
	case CategoryHPRemaining:
		return Depth{Layer: LayerOverlay, Tile: tileDepth, Sub: SubFront}
	case CategoryDebug:
		return Depth{Layer: LayerDebug}
	case CategoryParticle:
		return Depth{Layer: LayerParticle}
	case CategoryDamageTextShadow:
		return Depth{Layer: LayerCombatText, Sub: SubBack}
	case CategoryDamageText:
		return Depth{Layer: LayerCombatText, Sub: SubFront}
	case CategoryWaveTextShadow:
		return Depth{Layer: LayerHUDText, Sub: SubBack}
	case CategoryWaveText:
		return Depth{Layer: LayerHUDText, Sub: SubFront}
	case CategoryCursorGhost:
		return Depth{Layer: LayerCursor}
	default:
		panic(fmt.Sprintf("render: unknown category %d", int(category)))
	}
}
