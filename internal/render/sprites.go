package render

import "fmt"

// Sprite keys shared by the simulation and the asset store.
const (
	SpriteGrass        = "grass"
	SpriteStart        = "start"
	SpriteGoal         = "goal"
	SpriteTreeTall     = "tree_tall"
	SpriteTreeShort    = "tree_short"
	SpriteFenceLeft    = "fence_left"
	SpriteFenceTop     = "fence_top"
	SpriteFreezeTile   = "freeze_tile"
	SpriteSunFlower    = "sun_flower"
	SpriteFreezeFlower = "freeze_flower"
)

// EnemySprite names the frame of a wave's bunny facing the given way.
func EnemySprite(facing string, wave int) string {
	return fmt.Sprintf("bunny_%s_%d", facing, wave)
}
