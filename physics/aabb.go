// Package physics provides the broad-phase geometry layer of the simulation:
// axis-aligned bounding boxes and the uniform spatial hash grid they index
// into. Narrow-phase resolution is the caller's concern.
package physics

import "github.com/scrapforge/tanksim/vmath"

// AABB is an axis-aligned bounding box. Construction enforces
// Min.X <= Max.X and Min.Y <= Max.Y; there are no mutation methods, boxes
// are recomputed fresh from entity state each tick.
type AABB struct {
	Min vmath.Vec2
	Max vmath.Vec2
}

// NewAABB builds a box from two opposite corners in either order. Each axis
// independently takes the pairwise min and max, so NewAABB(a, b) and
// NewAABB(b, a) are identical.
func NewAABB(a, b vmath.Vec2) AABB {
	return AABB{
		Min: vmath.NewVec2(a.X.Min(b.X), a.Y.Min(b.Y)),
		Max: vmath.NewVec2(a.X.Max(b.X), a.Y.Max(b.Y)),
	}
}

// AABBFromSize builds a box centered on center with the given total size.
func AABBFromSize(center, size vmath.Vec2) AABB {
	halfX := size.X.Div(vmath.FromInt(2))
	halfY := size.Y.Div(vmath.FromInt(2))
	return AABB{
		Min: vmath.NewVec2(center.X-halfX, center.Y-halfY),
		Max: vmath.NewVec2(center.X+halfX, center.Y+halfY),
	}
}
