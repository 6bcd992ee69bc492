package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bunny-defense/pkg/utils"
)

// Images resolves sprite keys to images.
type Images interface {
	Image(key string) *ebiten.Image
}

// Faces resolves a point size to a font face.
type Faces interface {
	Face(size int) text.Face
}

// ScreenSurface draws primitives onto an ebiten image. One surface is reused
// for every frame; Begin points it at the frame's screen.
type ScreenSurface struct {
	target  *ebiten.Image
	images  Images
	faces   Faces
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewScreenSurface(images Images, faces Faces) *ScreenSurface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ScreenSurface{
		images:  images,
		faces:   faces,
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
	}
}

// Begin sets the draw target for the following calls.
func (s *ScreenSurface) Begin(target *ebiten.Image) {
	s.target = target
}

// DrawImage draws a sprite with its top-left corner at pos. Unknown keys are
// skipped.
func (s *ScreenSurface) DrawImage(sprite string, pos utils.Vec2) {
	img := s.images.Image(sprite)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	s.target.DrawImage(img, op)
}

// DrawRect fills r when width is zero and outlines it otherwise.
func (s *ScreenSurface) DrawRect(r utils.Rect, c color.RGBA, width float64) {
	if width == 0 {
		vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
		return
	}
	vector.StrokeRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, true)
}

func (s *ScreenSurface) DrawCircle(center utils.Vec2, radius float64, c color.RGBA, width float64) {
	if width == 0 {
		vector.DrawFilledCircle(s.target, float32(center.X), float32(center.Y), float32(radius), c, true)
		return
	}
	vector.StrokeCircle(s.target, float32(center.X), float32(center.Y), float32(radius), float32(width), c, true)
}

// DrawPolygon fills or strokes a closed outline.
func (s *ScreenSurface) DrawPolygon(points []utils.Vec2, c color.RGBA, width float64) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	if width == 0 {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	} else {
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width:    float32(width),
			LineJoin: vector.LineJoinRound,
		})
	}
	for i := range s.vs {
		s.vs[i].ColorR = float32(c.R) / 255
		s.vs[i].ColorG = float32(c.G) / 255
		s.vs[i].ColorB = float32(c.B) / 255
		s.vs[i].ColorA = float32(c.A) / 255
	}
	s.target.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawText draws a single line centered on center.
func (s *ScreenSurface) DrawText(str string, size int, center utils.Vec2, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(math.Round(center.X), math.Round(center.Y))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, s.faces.Face(size), op)
}
