package render

import (
	"fmt"
	"image/color"
	"slices"

	"go-bunny-defense/pkg/utils"
)

// DrawKind is the primitive a request draws.
type DrawKind int

const (
	KindImage DrawKind = iota
	KindRect
	KindCircle
	KindPolygon
	KindText
)

// Surface is the frame buffer a queue flushes into. Width 0 means filled.
type Surface interface {
	DrawImage(sprite string, pos utils.Vec2)
	DrawRect(r utils.Rect, c color.RGBA, width float64)
	DrawCircle(center utils.Vec2, radius float64, c color.RGBA, width float64)
	DrawPolygon(points []utils.Vec2, c color.RGBA, width float64)
	DrawText(text string, size int, center utils.Vec2, c color.RGBA)
}

// Request is one entry of the per-frame draw list.
type Request struct {
	Category Category
	Kind     DrawKind
	Depth    Depth

	Sprite   string
	Position utils.Vec2
	Rect     utils.Rect
	Radius   float64
	Points   []utils.Vec2
	Text     string
	FontSize int
	Color    color.RGBA
	Width    float64
}

// Queue collects draw requests for one frame and draws them in depth order.
type Queue struct {
	items []Request
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: make([]Request, 0, 512)}
}

// Submit appends a request as is. The helpers below fill Depth from Category.
func (q *Queue) Submit(req Request) {
	q.items = append(q.items, req)
}

// Image requests a sprite drawn with its top-left corner at pos.
func (q *Queue) Image(category Category, sprite string, pos utils.Vec2, tileDepth int) {
	q.Submit(Request{
		Category: category,
		Kind:     KindImage,
		Depth:    DepthFor(category, tileDepth),
		Sprite:   sprite,
		Position: pos,
	})
}

// Rect requests a rectangle.
func (q *Queue) Rect(category Category, r utils.Rect, c color.RGBA, width float64, tileDepth int) {
	q.Submit(Request{
		Category: category,
		Kind:     KindRect,
		Depth:    DepthFor(category, tileDepth),
		Rect:     r,
		Color:    c,
		Width:    width,
	})
}

// Circle requests a circle around center.
func (q *Queue) Circle(category Category, center utils.Vec2, radius float64, c color.RGBA, width float64, tileDepth int) {
	q.Submit(Request{
		Category: category,
		Kind:     KindCircle,
		Depth:    DepthFor(category, tileDepth),
		Position: center,
		Radius:   radius,
		Color:    c,
		Width:    width,
	})
}

// Polygon requests a closed polygon.
func (q *Queue) Polygon(category Category, points []utils.Vec2, c color.RGBA, width float64, tileDepth int) {
	q.Submit(Request{
		Category: category,
		Kind:     KindPolygon,
		Depth:    DepthFor(category, tileDepth),
		Points:   points,
		Color:    c,
		Width:    width,
	})
}

// Text requests text centered on center.
func (q *Queue) Text(category Category, text string, size int, center utils.Vec2, c color.RGBA) {
	q.Submit(Request{
		Category: category,
		Kind:     KindText,
		Depth:    DepthFor(category, 0),
		Position: center,
		Text:     text,
		FontSize: size,
		Color:    c,
	})
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	return len(q.items)
}

// Clear drops every pending request.
func (q *Queue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Flush stably sorts the pending requests by depth, draws them onto s and
// clears the queue. Requests with equal depth keep their submission order.
func (q *Queue) Flush(s Surface) {
	slices.SortStableFunc(q.items, func(a, b Request) int {
		return a.Depth.Compare(b.Depth)
	})
	for i := range q.items {
		draw(s, &q.items[i])
	}
	q.Clear()
}

func draw(s Surface, req *Request) {
	switch req.Kind {
	case KindImage:
		s.DrawImage(req.Sprite, req.Position)
	case KindRect:
		s.DrawRect(req.Rect, req.Color, req.Width)
	case KindCircle:
		s.DrawCircle(req.Position, req.Radius, req.Color, req.Width)
	case KindPolygon:
		s.DrawPolygon(req.Points, req.Color, req.Width)
	case KindText:
		s.DrawText(req.Text, req.FontSize, req.Position, req.Color)
	default:
		panic(fmt.Sprintf("render: unknown draw kind %d", int(req.Kind)))
	}
}
