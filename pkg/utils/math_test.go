package utils

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Len())
	}
	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("Expected zero vector to stay zero, got %+v", z)
	}
}

func TestRectContainsCircle(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 20, H: 20}
	tests := []struct {
		name   string
		center Vec2
		radius float64
		want   bool
	}{
		{"centered", Vec2{10, 10}, 4, true},
		{"touching edge", Vec2{4, 10}, 4, true},
		{"crossing left edge", Vec2{3, 10}, 4, false},
		{"crossing bottom edge", Vec2{10, 17}, 4, false},
		{"outside", Vec2{40, 40}, 1, false},
		{"larger than rect", Vec2{10, 10}, 11, false},
	}
	for _, tt := range tests {
		if got := r.ContainsCircle(tt.center, tt.radius); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
