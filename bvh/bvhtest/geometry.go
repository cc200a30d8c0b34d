package bvhtest

import "math"

// Point is a 2D point, used both as a leaf's geometry and as a query's
// nearest-neighbor geometry.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box, closed on both ends.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoxOf returns a degenerate box containing exactly p.
func BoxOf(p Point) Box {
	return Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Union returns the smallest box containing both a and b.
func Union(a, b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// Overlaps reports whether a and b share at least one point. Symmetric and
// reflexive.
func Overlaps(a, b Box) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX &&
		a.MinY <= b.MaxY && a.MaxY >= b.MinY
}

// OverlapsFunc curries Overlaps for use as a twochild.Spatial/rope.Spatial
// predicate over a fixed query box.
func OverlapsFunc(query Box) func(Box) bool {
	return func(bv Box) bool { return Overlaps(query, bv) }
}

// Distance computes the Euclidean distance from p to the nearest point of
// bv (0 if p is inside bv). It is monotone under containment, the
// precondition both kernel packages rest their pruning correctness on:
// clamping p's coordinates into a larger box can only move the clamped
// point closer to p.
func Distance(p Point, bv Box) float64 {
	dx := math.Max(math.Max(bv.MinX-p.X, 0), p.X-bv.MaxX)
	dy := math.Max(math.Max(bv.MinY-p.Y, 0), p.Y-bv.MaxY)
	return math.Hypot(dx, dy)
}
