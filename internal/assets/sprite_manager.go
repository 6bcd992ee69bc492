package assets

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/logger"
)

var facings = []component.Facing{
	component.FacingNone,
	component.FacingLeft,
	component.FacingRight,
	component.FacingDown,
	component.FacingUp,
}

// SpriteManager loads, caches and releases sprite images. A PNG under the
// sprite directory named after the key wins; otherwise the sprite is painted.
type SpriteManager struct {
	dir    string
	lib    *defs.Library
	images map[string]*ebiten.Image
	log    *logrus.Entry
}

func NewSpriteManager(dir string, lib *defs.Library) *SpriteManager {
	return &SpriteManager{
		dir:    dir,
		lib:    lib,
		images: make(map[string]*ebiten.Image),
		log:    logger.For("assets"),
	}
}

// Image returns the sprite for key, building every sprite on first use.
// Unknown keys return nil.
func (m *SpriteManager) Image(key string) *ebiten.Image {
	if len(m.images) == 0 {
		m.LoadAll()
	}
	return m.images[key]
}

// LoadAll builds the whole sprite set: tiles, scenery, flowers and one
// bunny per wave and facing.
func (m *SpriteManager) LoadAll() {
	w, h := int(config.TileRenderWidth), int(config.TileRenderHeight)

	m.load(render.SpriteGrass, func() *ebiten.Image { return paintTile(w, h, grassColor) })
	m.load(render.SpriteStart, func() *ebiten.Image { return paintTile(w, h, startColor) })
	m.load(render.SpriteGoal, func() *ebiten.Image { return paintTile(w, h, goalColor) })
	m.load(render.SpriteFreezeTile, func() *ebiten.Image { return paintTile(w, h, freezeTileColor) })
	m.load(render.SpriteTreeTall, func() *ebiten.Image { return paintTree(w, 2*h, 0.45) })
	m.load(render.SpriteTreeShort, func() *ebiten.Image { return paintTree(w, 2*h, 0.3) })
	m.load(render.SpriteFenceLeft, func() *ebiten.Image { return paintFence(w, 2*h, true) })
	m.load(render.SpriteFenceTop, func() *ebiten.Image { return paintFence(w, 2*h, false) })

	for _, t := range m.lib.TowerOrder {
		def := m.lib.Tower(t)
		m.load(string(t), func() *ebiten.Image { return paintFlower(w, h, def.BulletRGBA()) })
	}

	ew, eh := int(config.EnemyRenderWidth), int(config.EnemyRenderHeight)
	for _, wave := range m.lib.Waves {
		for _, f := range facings {
			m.load(render.EnemySprite(f.String(), wave.Wave), func() *ebiten.Image {
				return paintBunny(ew, eh, wave.RGBA(), f)
			})
		}
	}
	m.log.WithField("count", len(m.images)).Info("sprites loaded")
}

func (m *SpriteManager) load(key string, paint func() *ebiten.Image) {
	if _, ok := m.images[key]; ok {
		return
	}
	if m.dir != "" {
		path := filepath.Join(m.dir, key+".png")
		if _, err := os.Stat(path); err == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				m.images[key] = img
				return
			}
			m.log.WithError(err).WithField("path", path).Warn("failed to load sprite, painting instead")
		}
	}
	m.images[key] = paint()
}

// Cleanup releases every cached image.
func (m *SpriteManager) Cleanup() {
	for key, img := range m.images {
		img.Deallocate()
		delete(m.images, key)
	}
	m.log.Debug("sprites released")
}

var (
	grassColor      = color.RGBA{96, 170, 72, 255}
	startColor      = color.RGBA{196, 164, 112, 255}
	goalColor       = color.RGBA{150, 90, 60, 255}
	freezeTileColor = color.RGBA{170, 220, 255, 150}
	trunkColor      = color.RGBA{110, 72, 40, 255}
	leafColor       = color.RGBA{40, 120, 50, 255}
	fenceColor      = color.RGBA{180, 140, 90, 255}
	stemColor       = color.RGBA{50, 140, 60, 255}
	eyeColor        = color.RGBA{20, 20, 20, 255}
)
