package physics

import (
	"testing"

	"github.com/scrapforge/tanksim/vmath"
)

func vec(x, y int) vmath.Vec2 {
	return vmath.NewVec2(vmath.FromInt(x), vmath.FromInt(y))
}

func TestNewAABBCornerOrderIndependent(t *testing.T) {
	corners := [][2]vmath.Vec2{
		{vec(0, 0), vec(10, 10)},
		{vec(10, 10), vec(0, 0)},
		{vec(0, 10), vec(10, 0)}, // mixed per-axis ordering
		{vec(10, 0), vec(0, 10)},
	}
	want := AABB{Min: vec(0, 0), Max: vec(10, 10)}
	for _, c := range corners {
		if got := NewAABB(c[0], c[1]); got != want {
			t.Errorf("NewAABB(%v, %v) = %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestNewAABBNegativeCoordinates(t *testing.T) {
	got := NewAABB(vec(3, -7), vec(-2, 5))
	want := AABB{Min: vec(-2, -7), Max: vec(3, 5)}
	if got != want {
		t.Errorf("NewAABB = %v, want %v", got, want)
	}
}

func TestNewAABBDegeneratePoint(t *testing.T) {
	p := vec(4, 4)
	got := NewAABB(p, p)
	if got.Min != p || got.Max != p {
		t.Errorf("point AABB = %v", got)
	}
}

func TestAABBFromSize(t *testing.T) {
	got := AABBFromSize(vec(10, 20), vec(4, 6))
	want := AABB{Min: vec(8, 17), Max: vec(12, 23)}
	if got != want {
		t.Errorf("AABBFromSize = %v, want %v", got, want)
	}
}

func TestAABBFromSizeOddHalfExtent(t *testing.T) {
	// Size 3 splits into exact 1.5 half extents in Q32.32
	got := AABBFromSize(vec(0, 0), vec(3, 3))
	half := vmath.FromInt(3).Div(vmath.FromInt(2))
	if got.Min.X != -half || got.Max.X != half {
		t.Errorf("half extent = (%d, %d), want +/-%d", got.Min.X, got.Max.X, half)
	}
}
