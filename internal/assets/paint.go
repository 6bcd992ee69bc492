package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bunny-defense/internal/component"
	prender "go-bunny-defense/pkg/render"
)

var whiteImage *ebiten.Image

func fillPath(dst *ebiten.Image, path *vector.Path, c color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// diamond outlines a w by h rhombus inset by the given margins.
func diamond(w, h, mx, my float32) *vector.Path {
	path := &vector.Path{}
	path.MoveTo(w/2, my)
	path.LineTo(mx, h/2)
	path.LineTo(w/2, h-my)
	path.LineTo(w-mx, h/2)
	path.Close()
	return path
}

// paintTile draws a diamond floor cell with a darker rim.
func paintTile(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fillPath(img, diamond(float32(w), float32(h), 0, 0), prender.DarkenColor(c))
	fillPath(img, diamond(float32(w), float32(h), 2, 1), c)
	return img
}

// paintTree draws a trunk and a round crown whose size is a fraction of the
// sprite width.
func paintTree(w, h int, crown float32) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledRect(img, fw/2-3, fh*0.45, 6, fh*0.35, trunkColor, true)
	r := fw * crown / 2 * 1.6
	vector.DrawFilledCircle(img, fw/2, fh*0.45-r/3, r, leafColor, true)
	vector.DrawFilledCircle(img, fw/2-r/3, fh*0.45-r/2, r/2, prender.LightenColor(leafColor), true)
	return img
}

// paintFence draws three posts joined by two rails running along one of the
// map's back edges.
func paintFence(w, h int, left bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	// the edge runs from (x0,y0) to (x1,y1) inside the sprite
	x0, y0, x1, y1 := fw/2, fh*0.5, float32(0), fh*0.75
	if !left {
		x0, y0, x1, y1 = 0, fh*0.5, fw/2, fh*0.75
	}
	for i := 0; i < 3; i++ {
		t := float32(i) / 2
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		vector.DrawFilledRect(img, x-2, y-fh*0.3, 4, fh*0.3, prender.DarkenColor(fenceColor), true)
	}
	for _, off := range []float32{0.22, 0.12} {
		vector.StrokeLine(img, x0, y0-fh*off, x1, y1-fh*off, 3, fenceColor, true)
	}
	return img
}

// paintFlower draws a stem topped with a round head in the tower's colour.
func paintFlower(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.StrokeLine(img, fw/2, fh*0.85, fw/2, fh*0.45, 3, stemColor, true)
	for _, dx := range []float32{-6, 6} {
		vector.DrawFilledCircle(img, fw/2+dx, fh*0.35, 5, prender.LightenColor(c), true)
	}
	vector.DrawFilledCircle(img, fw/2, fh*0.25, 5, prender.LightenColor(c), true)
	vector.DrawFilledCircle(img, fw/2, fh*0.45, 5, prender.LightenColor(c), true)
	vector.DrawFilledCircle(img, fw/2, fh*0.35, 5, c, true)
	return img
}

// paintBunny draws a body, a head with two ears, and eyes shifted toward
// the facing direction.
func paintBunny(w, h int, c color.RGBA, f component.Facing) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	ear := prender.DarkenColor(c)
	vector.DrawFilledRect(img, fw/2-7, 0, 4, fh*0.35, ear, true)
	vector.DrawFilledRect(img, fw/2+3, 0, 4, fh*0.35, ear, true)
	vector.DrawFilledCircle(img, fw/2, fh*0.7, fw*0.38, c, true)
	vector.DrawFilledCircle(img, fw/2, fh*0.4, fw*0.25, c, true)

	dx, dy := float32(0), float32(0)
	switch f {
	case component.FacingLeft:
		dx = -3
	case component.FacingRight:
		dx = 3
	case component.FacingUp:
		dy = -2
	case component.FacingDown:
		dy = 2
	}
	if f != component.FacingUp {
		vector.DrawFilledCircle(img, fw/2-3+dx, fh*0.38+dy, 1.5, eyeColor, true)
		vector.DrawFilledCircle(img, fw/2+3+dx, fh*0.38+dy, 1.5, eyeColor, true)
	}
	return img
}
