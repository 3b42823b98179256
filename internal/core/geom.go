// Package core provides the primitives shared by the simulation and the
// platform layer: vectors, boxes, colors, input frames and the screen buffer.
// It has no terminal dependencies so game logic stays pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D point or direction in world units. World space has its
// origin at the bottom-left corner with +y pointing up.
type Vec2 = mgl32.Vec2

// Epsilon is the float32 machine epsilon. Determinants at or below it are
// treated as parallel segments.
const Epsilon float32 = 1.1920929e-07

// V is shorthand for building a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Vec2
}

// Instance is the renderable state of one entity.
// Size is the full extent of the box; Drawable halves it.
type Instance struct {
	Position Vec2
	Size     Vec2
	Angle    float32 // radians
	Color    RGBA
}

// Drawable is the packed record handed to renderers.
type Drawable struct {
	Position   Vec2
	HalfExtent Vec2
	Rotation   Vec2 // (cos, sin) of the instance angle
	Color      RGBA
}

// Drawable packs the instance for a renderer.
func (i Instance) Drawable() Drawable {
	sin, cos := math.Sincos(float64(i.Angle))
	return Drawable{
		Position:   i.Position,
		HalfExtent: i.Size.Mul(0.5),
		Rotation:   V(float32(cos), float32(sin)),
		Color:      i.Color,
	}
}

// Min returns the bottom-left corner of the box.
func (i Instance) Min() Vec2 {
	return i.Position.Sub(i.Size.Mul(0.5))
}

// Max returns the top-right corner of the box.
func (i Instance) Max() Vec2 {
	return i.Position.Add(i.Size.Mul(0.5))
}

// Edges returns the four sides of the box in the order bottom, top, left, right.
func (i Instance) Edges() [4]Segment {
	lo, hi := i.Min(), i.Max()
	return [4]Segment{
		{A: V(lo.X(), lo.Y()), B: V(hi.X(), lo.Y())},
		{A: V(lo.X(), hi.Y()), B: V(hi.X(), hi.Y())},
		{A: V(lo.X(), lo.Y()), B: V(lo.X(), hi.Y())},
		{A: V(hi.X(), lo.Y()), B: V(hi.X(), hi.Y())},
	}
}

// AABBOverlap reports whether two boxes intersect on both axes.
// Touching boxes count as overlapping.
func AABBOverlap(a, b Instance) bool {
	d := a.Position.Sub(b.Position)
	reach := a.Size.Add(b.Size).Mul(0.5)
	return abs32(d.X()) <= reach.X() && abs32(d.Y()) <= reach.Y()
}

// SegmentIntersect solves a + r*(b-a) == c + s*(d-c).
// ok is false when the segments are parallel or degenerate. The caller
// decides which ranges of r and s count as a hit.
func SegmentIntersect(a, b, c, d Vec2) (r, s float32, ok bool) {
	u := b.Sub(a)
	v := d.Sub(c)
	det := u.X()*v.Y() - u.Y()*v.X()
	if abs32(det) <= Epsilon {
		return 0, 0, false
	}
	ac := c.Sub(a)
	r = (v.Y()*ac.X() - v.X()*ac.Y()) / det
	s = (u.Y()*ac.X() - u.X()*ac.Y()) / det
	return r, s, true
}

// Reflect mirrors in about the surface normal n. The result is not
// renormalized.
func Reflect(in, n Vec2) Vec2 {
	return in.Add(n.Mul(-2 * in.Dot(n)))
}

// Normalize returns v scaled to unit length, or v unchanged when it has no
// length to scale.
func Normalize(v Vec2) Vec2 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// InUnit reports whether t lies in [0, 1].
func InUnit(t float32) bool {
	return t >= 0 && t <= 1
}

// ClampF32 restricts val to [lo, hi].
func ClampF32(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Rect is an axis-aligned box in screen cells, used for overlay drawing.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts an int to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
