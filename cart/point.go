// Package cart provides bounded rectangle arithmetic in cartesian X/Y
// coordinates.
//
// A [Rect] covers an inclusive range of integer coordinates of a
// single fixed-width type and an [FRect] does the same for floats.
// Growing, shrinking and moving them never wraps around: each
// operation either saturates at the bounds of the type or, in its
// Checked form, fails with an error and leaves the rectangle alone.
// Y grows downwards, so the top edge of a rectangle is at Min.Y.
package cart

import (
	"fmt"

	"deedles.dev/xrect/geom"
)

// Point is a position in cartesian X/Y space.
type Point[T geom.Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T geom.Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out, In geom.Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

// String returns a string representation of p like "(3,4)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q. It wraps on overflow like the
// underlying type does.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector p-q. It wraps on overflow like the
// underlying type does.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// Delta returns the absolute distance between p and q along each
// axis. Unlike Sub, it can not overflow.
func Delta[T geom.Integer](p, q Point[T]) Point[uint64] {
	return Point[uint64]{geom.AbsDiff(p.X, q.X), geom.AbsDiff(p.Y, q.Y)}
}
