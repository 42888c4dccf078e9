// Package matrix provides bounded rectangle arithmetic using row and
// column coordinates.
//
// It offers the same operations as package cart, but its points name
// their axes Row and Col and rows come first wherever an order is
// needed. A matrix rectangle converts to a cartesian one by mapping
// Row to Y and Col to X.
package matrix

import (
	"fmt"

	"deedles.dev/xrect/cart"
	"deedles.dev/xrect/geom"
)

// Point is a cell position in a matrix.
type Point[T geom.Scalar] struct {
	Row, Col T
}

// Pt is shorthand for Point[T]{row, col}.
func Pt[T geom.Scalar](row, col T) Point[T] {
	return Point[T]{row, col}
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out, In geom.Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.Row), Out(p.Col))
}

// String returns p in R1C1 notation, such as "r3c4".
func (p Point[T]) String() string {
	return fmt.Sprintf("r%vc%v", p.Row, p.Col)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.Row + q.Row, p.Col + q.Col}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.Row - q.Row, p.Col - q.Col}
}

// Cart returns p as a cartesian point with Col as X and Row as Y.
func (p Point[T]) Cart() cart.Point[T] {
	return cart.Pt(p.Col, p.Row)
}

// FromCart is the inverse of [Point.Cart].
func FromCart[T geom.Scalar](p cart.Point[T]) Point[T] {
	return Pt(p.Y, p.X)
}

// Delta returns the absolute distance between p and q along each
// axis.
func Delta[T geom.Integer](p, q Point[T]) Point[uint64] {
	return Point[uint64]{geom.AbsDiff(p.Row, q.Row), geom.AbsDiff(p.Col, q.Col)}
}
