package cart

import (
	"fmt"

	"deedles.dev/xrect/geom"
)

// A Rect contains the points with Min.X <= X <= Max.X and
// Min.Y <= Y <= Max.Y. Both corners are inclusive. It is well-formed
// if Min.X <= Max.X and likewise for Y. Its methods are only defined
// for well-formed rectangles and always return well-formed rectangles
// for them.
//
// Operations that move or resize a Rect come in two families. The
// saturating family never fails and instead clamps the result into
// T's range or leaves the rectangle alone. The checked family returns
// an error wrapping [geom.ErrOutOfDomain] or [geom.ErrInvalidSize]
// and never partially modifies its receiver.
type Rect[T geom.Integer] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}. The corners are
// not swapped, so the caller is responsible for x0 <= x1 and
// y0 <= y1.
func Rt[T geom.Integer](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// Largest returns the rectangle that covers every point representable
// by T.
func Largest[T geom.Integer]() Rect[T] {
	lo, hi := geom.Bounds[T]()
	return Rt(lo, lo, hi, hi)
}

// RConv converts a Rect[In] to a Rect[Out]. Coordinates that Out can
// not represent wrap the same way a plain conversion would. Use
// [CheckedRConv] to reject them instead.
func RConv[Out, In geom.Integer](r Rect[In]) Rect[Out] {
	return Rect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// CheckedRConv is like [RConv] but fails with [geom.ErrOutOfDomain]
// if any coordinate of r does not fit into Out. Conversions to a wider
// type of the same signedness never fail.
func CheckedRConv[Out, In geom.Integer](r Rect[In]) (Rect[Out], error) {
	for _, v := range [...]In{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if !geom.Fits[Out](v) {
			return Rect[Out]{}, fmt.Errorf("convert %v: %w", r, geom.ErrOutOfDomain)
		}
	}
	return RConv[Out](r), nil
}

// String returns a string representation of r like "(3,4)-(6,5)".
func (r Rect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

func fromSpans[T geom.Integer](x, y geom.Span[T]) Rect[T] {
	return Rt(x.Lo, y.Lo, x.Hi, y.Hi)
}

func (r Rect[T]) box() geom.Box[geom.Span[T], uint64, int64] {
	return geom.Box[geom.Span[T], uint64, int64]{A: r.X(), B: r.Y()}
}

func fromBox[T geom.Integer](b geom.Box[geom.Span[T], uint64, int64]) Rect[T] {
	return fromSpans(b.A, b.B)
}

// X returns the span of r along the X axis.
func (r Rect[T]) X() geom.Span[T] {
	return geom.Sp(r.Min.X, r.Max.X)
}

// Y returns the span of r along the Y axis.
func (r Rect[T]) Y() geom.Span[T] {
	return geom.Sp(r.Min.Y, r.Max.Y)
}

// Canon returns r with its corners swapped where necessary so that it
// is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// DeltaX returns Max.X - Min.X.
func (r Rect[T]) DeltaX() uint64 {
	return r.X().Delta()
}

// DeltaY returns Max.Y - Min.Y.
func (r Rect[T]) DeltaY() uint64 {
	return r.Y().Delta()
}

// MaxDelta returns the larger of DeltaX and DeltaY.
func (r Rect[T]) MaxDelta() uint64 {
	return max(r.DeltaX(), r.DeltaY())
}

// LenX returns the number of distinct X coordinates covered by r.
func (r Rect[T]) LenX() uint64 {
	return r.X().Len()
}

// LenY returns the number of distinct Y coordinates covered by r.
func (r Rect[T]) LenY() uint64 {
	return r.Y().Len()
}

// MaxLen returns the larger of LenX and LenY.
func (r Rect[T]) MaxLen() uint64 {
	return max(r.LenX(), r.LenY())
}

// Size returns DeltaX and DeltaY as a point.
func (r Rect[T]) Size() Point[uint64] {
	return Delta(r.Min, r.Max)
}

// Contains reports whether p is inside of r, including its edges.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.X().Contains(p.X) && r.Y().Contains(p.Y)
}

// Pinned returns the edges of r that lie on the bounds of T's range.
// The top edge is the one at Min.Y.
func (r Rect[T]) Pinned() geom.Edges {
	xlo, xhi := r.X().Pinned()
	ylo, yhi := r.Y().Pinned()
	return edgeIf(xlo, geom.EdgeLeft) | edgeIf(xhi, geom.EdgeRight) |
		edgeIf(ylo, geom.EdgeTop) | edgeIf(yhi, geom.EdgeBottom)
}

func edgeIf(b bool, e geom.Edges) geom.Edges {
	if b {
		return e
	}
	return geom.EdgeNone
}

// Inflate returns r grown by one unit on every side. A side that is
// already pinned to a bound of T does not move and the opposite side
// grows by two instead. If r already spans all of T along either
// axis, it is returned unchanged.
func (r Rect[T]) Inflate() Rect[T] {
	return fromBox(r.box().Inflate())
}

// InflateInPlace sets r to the result of [Rect.Inflate].
func (r *Rect[T]) InflateInPlace() {
	*r = r.Inflate()
}

// CheckedInflate is like Inflate but only leaves an axis alone if
// that axis already spans all of T. It returns an error if both axes
// do.
func (r Rect[T]) CheckedInflate() (Rect[T], error) {
	b, err := r.box().CheckedInflate()
	if err != nil {
		return r, err
	}
	return fromBox(b), nil
}

// CheckedInflateInPlace stores the result of [Rect.CheckedInflate]
// in r. r is not modified if it returns an error.
func (r *Rect[T]) CheckedInflateInPlace() error {
	n, err := r.CheckedInflate()
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustInflate is like CheckedInflate but panics on error.
func (r Rect[T]) MustInflate() Rect[T] {
	n, err := r.CheckedInflate()
	if err != nil {
		panic(err)
	}
	return n
}

// MustInflateInPlace is like MustInflate but stores the result in r.
func (r *Rect[T]) MustInflateInPlace() {
	*r = r.MustInflate()
}

// Deflate returns r shrunk by one unit on every side. If either delta
// of r is less than three, r is returned unchanged.
func (r Rect[T]) Deflate() Rect[T] {
	return fromBox(r.box().Deflate())
}

// DeflateInPlace sets r to the result of [Rect.Deflate].
func (r *Rect[T]) DeflateInPlace() {
	*r = r.Deflate()
}

// SaturatingResize returns r resized so that both of its lengths are
// size. The result stays as close to the center of r as possible,
// with the extra unit of an odd difference going to the Max side. If
// the result would not fit into T's range, it is shifted until it
// does. If size is less than [geom.MinSize] or larger than
// [geom.DomainLen], r is returned unchanged.
func (r Rect[T]) SaturatingResize(size uint64) Rect[T] {
	return fromBox(r.box().SaturatingResize(size))
}

// SaturatingResizeInPlace sets r to the result of [Rect.SaturatingResize].
func (r *Rect[T]) SaturatingResizeInPlace(size uint64) {
	*r = r.SaturatingResize(size)
}

// CheckedResize is like SaturatingResize but returns an error instead
// of shifting the result or ignoring an invalid size.
func (r Rect[T]) CheckedResize(size uint64) (Rect[T], error) {
	b, err := r.box().CheckedResize(size)
	if err != nil {
		return r, err
	}
	return fromBox(b), nil
}

// CheckedResizeInPlace stores the result of [Rect.CheckedResize]
// in r. r is not modified if it returns an error.
func (r *Rect[T]) CheckedResizeInPlace(size uint64) error {
	n, err := r.CheckedResize(size)
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustResize is like CheckedResize but panics on error.
func (r Rect[T]) MustResize(size uint64) Rect[T] {
	n, err := r.CheckedResize(size)
	if err != nil {
		panic(err)
	}
	return n
}

// MustResizeInPlace is like MustResize but stores the result in r.
func (r *Rect[T]) MustResizeInPlace(size uint64) {
	*r = r.MustResize(size)
}

// SaturatingTranslate returns r moved by d. If the result would leave
// T's range, it is clamped against the bound that it crossed without
// changing its size.
//
// The offset is signed regardless of T so that rectangles over
// unsigned types can move in both directions.
func SaturatingTranslate[T geom.Integer, D geom.Signed](r Rect[T], d Point[D]) Rect[T] {
	return fromBox(r.box().SaturatingTranslate(int64(d.X), int64(d.Y)))
}

// SaturatingTranslateInPlace sets r to the result of [SaturatingTranslate].
func SaturatingTranslateInPlace[T geom.Integer, D geom.Signed](r *Rect[T], d Point[D]) {
	*r = SaturatingTranslate(*r, d)
}

// CheckedTranslate returns r moved by d, or an error if any corner of
// the result would be outside of T's range.
func CheckedTranslate[T geom.Integer, D geom.Signed](r Rect[T], d Point[D]) (Rect[T], error) {
	b, err := r.box().CheckedTranslate(int64(d.X), int64(d.Y))
	if err != nil {
		return r, err
	}
	return fromBox(b), nil
}

// CheckedTranslateInPlace moves r by d. On error, r is not modified.
func CheckedTranslateInPlace[T geom.Integer, D geom.Signed](r *Rect[T], d Point[D]) error {
	n, err := CheckedTranslate(*r, d)
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustTranslate is like CheckedTranslate but panics on error.
func MustTranslate[T geom.Integer, D geom.Signed](r Rect[T], d Point[D]) Rect[T] {
	n, err := CheckedTranslate(r, d)
	if err != nil {
		panic(err)
	}
	return n
}

// MustTranslateInPlace is like MustTranslate but stores the result in r.
func MustTranslateInPlace[T geom.Integer, D geom.Signed](r *Rect[T], d Point[D]) {
	*r = MustTranslate(*r, d)
}
