package render

import (
	"fmt"
	"image/color"
	"testing"

	"go-bunny-defense/pkg/utils"
)

type recordingSurface struct {
	calls []string
}

func (r *recordingSurface) DrawImage(sprite string, pos utils.Vec2) {
	r.calls = append(r.calls, "image:"+sprite)
}

func (r *recordingSurface) DrawRect(rect utils.Rect, c color.RGBA, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("rect:%v", rect.W))
}

func (r *recordingSurface) DrawCircle(center utils.Vec2, radius float64, c color.RGBA, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("circle:%v", radius))
}

func (r *recordingSurface) DrawPolygon(points []utils.Vec2, c color.RGBA, width float64) {
	r.calls = append(r.calls, fmt.Sprintf("polygon:%d", len(points)))
}

func (r *recordingSurface) DrawText(text string, size int, center utils.Vec2, c color.RGBA) {
	r.calls = append(r.calls, "text:"+text)
}

func assertCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d draws %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected draw %d to be %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFlushOrdersSameTileByLayer(t *testing.T) {
	q := NewQueue()
	s := &recordingSurface{}

	q.Circle(CategoryDebug, utils.Vec2{}, 5, color.RGBA{}, 2, 7)
	q.Image(CategoryPlaced, "placed", utils.Vec2{}, 7)
	q.Image(CategoryFloor, "floor", utils.Vec2{}, 7)
	q.Flush(s)

	assertCalls(t, s.calls, "image:floor", "image:placed", "circle:5")
}

func TestFlushInterleavesObjectsByTileDepth(t *testing.T) {
	q := NewQueue()
	s := &recordingSurface{}

	q.Image(CategoryEnemy, "front-enemy", utils.Vec2{}, 10)
	q.Image(CategoryCollision, "tree", utils.Vec2{}, 8)
	q.Image(CategoryEnemy, "back-enemy", utils.Vec2{}, 5)
	q.Image(CategoryPlaced, "flower", utils.Vec2{}, 10)
	q.Flush(s)

	assertCalls(t, s.calls, "image:back-enemy", "image:tree", "image:flower", "image:front-enemy")
}

func TestFlushKeepsSubmissionOrderForEqualDepth(t *testing.T) {
	q := NewQueue()
	s := &recordingSurface{}

	for i := 0; i < 5; i++ {
		q.Text(CategoryDamageText, fmt.Sprint(i), 16, utils.Vec2{}, color.RGBA{})
	}
	q.Flush(s)

	assertCalls(t, s.calls, "text:0", "text:1", "text:2", "text:3", "text:4")
}

func TestFlushPairsBackBeforeFront(t *testing.T) {
	q := NewQueue()
	s := &recordingSurface{}

	q.Text(CategoryWaveText, "wave", 48, utils.Vec2{}, color.RGBA{})
	q.Text(CategoryWaveTextShadow, "shadow", 48, utils.Vec2{}, color.RGBA{})
	q.Rect(CategoryHPRemaining, utils.Rect{W: 20}, color.RGBA{}, 0, 4)
	q.Rect(CategoryHPUsed, utils.Rect{W: 32}, color.RGBA{}, 0, 4)
	q.Flush(s)

	assertCalls(t, s.calls, "rect:32", "rect:20", "text:shadow", "text:wave")
}

func TestFlushClearsQueue(t *testing.T) {
	q := NewQueue()
	s := &recordingSurface{}

	q.Polygon(CategorySelector, make([]utils.Vec2, 4), color.RGBA{}, 2, 3)
	q.Flush(s)
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after flush, got %d", q.Len())
	}

	q.Flush(s)
	if len(s.calls) != 1 {
		t.Errorf("Expected second flush to draw nothing, got %v", s.calls)
	}
}

func TestFencesDrawBeforeFloor(t *testing.T) {
	if DepthFor(CategoryFenceLeft, 0).Compare(DepthFor(CategoryFloor, 3)) >= 0 {
		t.Errorf("Expected fences to sort before floor tiles")
	}
}

func TestDepthForUnknownCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for unknown category")
		}
	}()
	DepthFor(Category(999), 0)
}

func TestFlushUnknownKindPanics(t *testing.T) {
	q := NewQueue()
	q.Submit(Request{Kind: DrawKind(42)})
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for unknown draw kind")
		}
	}()
	q.Flush(&recordingSurface{})
}
