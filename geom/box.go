package geom

import "fmt"

// interval is the set of operations that a Box needs from each of its
// axes. It is implemented by Span, with L uint64 and D int64, and by
// FSpan, with both L and D being the span's own float type.
type interval[S, L, D any] interface {
	Pinned() (lo, hi bool)
	Inflate() S
	Deflate() S
	deflatable() bool
	SaturatingResize(size L) S
	CheckedResize(size L) (S, error)
	SaturatingShift(n D) S
	CheckedShift(n D) (S, error)
}

// A Box is an axis-aligned rectangle made of one interval per axis.
// The meaning of the axes is left to the caller: the cart package
// puts X in A and Y in B, while the matrix package puts rows in A and
// columns in B.
//
// L is the type used for lengths and D is the type used for
// translation offsets.
type Box[S interval[S, L, D], L, D any] struct {
	A, B S
}

func isFull[S interface{ Pinned() (bool, bool) }](s S) bool {
	lo, hi := s.Pinned()
	return lo && hi
}

// Inflate grows both axes by one unit on each side. If either axis
// already spans its entire domain, b is returned unchanged.
func (b Box[S, L, D]) Inflate() Box[S, L, D] {
	if isFull(b.A) || isFull(b.B) {
		return b
	}
	return Box[S, L, D]{b.A.Inflate(), b.B.Inflate()}
}

// CheckedInflate grows every axis that does not already span its
// entire domain. It fails only if neither axis can grow.
func (b Box[S, L, D]) CheckedInflate() (Box[S, L, D], error) {
	fa, fb := isFull(b.A), isFull(b.B)
	if fa && fb {
		return b, fmt.Errorf("inflate: %w", ErrOutOfDomain)
	}

	if !fa {
		b.A = b.A.Inflate()
	}
	if !fb {
		b.B = b.B.Inflate()
	}
	return b, nil
}

// Deflate shrinks both axes by one unit on each side, but only if
// both have a delta of at least three. Otherwise b is returned
// unchanged.
func (b Box[S, L, D]) Deflate() Box[S, L, D] {
	if !b.A.deflatable() || !b.B.deflatable() {
		return b
	}
	return Box[S, L, D]{b.A.Deflate(), b.B.Deflate()}
}

func (b Box[S, L, D]) SaturatingResize(size L) Box[S, L, D] {
	return Box[S, L, D]{
		b.A.SaturatingResize(size),
		b.B.SaturatingResize(size),
	}
}

// CheckedResize resizes both axes to size. If either axis fails, b is
// returned unchanged along with the error.
func (b Box[S, L, D]) CheckedResize(size L) (Box[S, L, D], error) {
	a, err := b.A.CheckedResize(size)
	if err != nil {
		return b, err
	}
	c, err := b.B.CheckedResize(size)
	if err != nil {
		return b, err
	}
	return Box[S, L, D]{a, c}, nil
}

func (b Box[S, L, D]) SaturatingTranslate(da, db D) Box[S, L, D] {
	return Box[S, L, D]{
		b.A.SaturatingShift(da),
		b.B.SaturatingShift(db),
	}
}

// CheckedTranslate moves b by da along A and db along B. If either
// move would leave the domain, b is returned unchanged along with the
// error.
func (b Box[S, L, D]) CheckedTranslate(da, db D) (Box[S, L, D], error) {
	a, err := b.A.CheckedShift(da)
	if err != nil {
		return b, err
	}
	c, err := b.B.CheckedShift(db)
	if err != nil {
		return b, err
	}
	return Box[S, L, D]{a, c}, nil
}
