// Package geom provides bounded interval arithmetic over fixed-width
// numeric domains.
//
// It is the engine underneath the cart and matrix packages. A [Span]
// or [FSpan] is a closed interval on a single axis and a [Box] pairs
// two of them into an axis-aligned rectangle. Every operation is
// defined in terms of the domain's representable range, so growing,
// shrinking and shifting either saturate at the domain's bounds or
// fail with [ErrOutOfDomain], depending on which family of methods is
// called.
package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	Integer | Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Signed is a constraint for any signed integer type. It is used for
// translation offsets.
type Signed interface {
	constraints.Signed
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// MinSize is the smallest side length that a resize will produce.
const MinSize = 3

var (
	// ErrOutOfDomain indicates that the result of an operation would
	// not fit into the domain's representable range.
	ErrOutOfDomain = errors.New("out of domain")

	// ErrInvalidSize indicates a requested side length that is smaller
	// than MinSize or larger than the domain can represent.
	ErrInvalidSize = errors.New("invalid size")
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in o are set in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}
