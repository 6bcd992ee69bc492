package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out faces of the embedded Go Regular font, one per size.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[int]text.Face
}

func NewFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded font")
	}
	return &Fonts{source: src, faces: make(map[int]text.Face)}, nil
}

// Face returns the face for size, creating it on first use.
func (f *Fonts) Face(size int) text.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: float64(size)}
	f.faces[size] = face
	return face
}
