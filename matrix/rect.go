package matrix

import (
	"fmt"
	"iter"

	"deedles.dev/xrect/cart"
	"deedles.dev/xrect/geom"
)

// A Rect is a block of cells with Min.Row <= Row <= Max.Row and
// Min.Col <= Col <= Max.Col. Apart from the naming of its axes, it
// behaves exactly like [cart.Rect].
type Rect[T geom.Integer] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(row0, col0), Pt(row1, col1)}. The
// corners are not swapped.
func Rt[T geom.Integer](row0, col0, row1, col1 T) Rect[T] {
	return Rect[T]{Point[T]{row0, col0}, Point[T]{row1, col1}}
}

// Largest returns the rectangle that covers every cell addressable by
// T.
func Largest[T geom.Integer]() Rect[T] {
	lo, hi := geom.Bounds[T]()
	return Rt(lo, lo, hi, hi)
}

// RectFromCart is the inverse of [Rect.Cart].
func RectFromCart[T geom.Integer](r cart.Rect[T]) Rect[T] {
	return Rect[T]{FromCart(r.Min), FromCart(r.Max)}
}

// RConv converts a Rect[In] to a Rect[Out], wrapping coordinates that
// Out can not represent.
func RConv[Out, In geom.Integer](r Rect[In]) Rect[Out] {
	return Rect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// CheckedRConv is like [RConv] but fails with [geom.ErrOutOfDomain]
// if any coordinate of r does not fit into Out.
func CheckedRConv[Out, In geom.Integer](r Rect[In]) (Rect[Out], error) {
	for _, v := range [...]In{r.Min.Row, r.Min.Col, r.Max.Row, r.Max.Col} {
		if !geom.Fits[Out](v) {
			return Rect[Out]{}, fmt.Errorf("convert %v: %w", r, geom.ErrOutOfDomain)
		}
	}
	return RConv[Out](r), nil
}

// String returns r as a range of cells, such as "r0c0:r3c4".
func (r Rect[T]) String() string {
	return r.Min.String() + ":" + r.Max.String()
}

// Cart returns r as a cartesian rectangle.
func (r Rect[T]) Cart() cart.Rect[T] {
	return cart.Rect[T]{Min: r.Min.Cart(), Max: r.Max.Cart()}
}

func (r Rect[T]) box() geom.Box[geom.Span[T], uint64, int64] {
	return geom.Box[geom.Span[T], uint64, int64]{A: r.Rows(), B: r.Cols()}
}

func fromBox[T geom.Integer](b geom.Box[geom.Span[T], uint64, int64]) Rect[T] {
	return Rt(b.A.Lo, b.B.Lo, b.A.Hi, b.B.Hi)
}

// Rows returns the span of rows covered by r.
func (r Rect[T]) Rows() geom.Span[T] {
	return geom.Sp(r.Min.Row, r.Max.Row)
}

// Cols returns the span of columns covered by r.
func (r Rect[T]) Cols() geom.Span[T] {
	return geom.Sp(r.Min.Col, r.Max.Col)
}

// DeltaRow returns Max.Row - Min.Row.
func (r Rect[T]) DeltaRow() uint64 {
	return r.Rows().Delta()
}

// DeltaCol returns Max.Col - Min.Col.
func (r Rect[T]) DeltaCol() uint64 {
	return r.Cols().Delta()
}

// LenRow returns DeltaRow plus one.
func (r Rect[T]) LenRow() uint64 {
	return r.Rows().Len()
}

// LenCol returns DeltaCol plus one.
func (r Rect[T]) LenCol() uint64 {
	return r.Cols().Len()
}

// MaxDelta returns the larger of DeltaRow and DeltaCol.
func (r Rect[T]) MaxDelta() uint64 {
	return max(r.DeltaRow(), r.DeltaCol())
}

// MaxLen returns the larger of LenRow and LenCol.
func (r Rect[T]) MaxLen() uint64 {
	return max(r.LenRow(), r.LenCol())
}

// Size returns DeltaRow and DeltaCol as a point.
func (r Rect[T]) Size() Point[uint64] {
	return Delta(r.Min, r.Max)
}

// Contains reports whether p is inside of r, including its edges.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.Rows().Contains(p.Row) && r.Cols().Contains(p.Col)
}

// Pinned returns the edges of r that lie on the bounds of T. The top
// edge is the first row.
func (r Rect[T]) Pinned() geom.Edges {
	return r.Cart().Pinned()
}

// Cells returns an iterator over every cell in r in row-major order.
func (r Rect[T]) Cells() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for row := range r.Rows().All() {
			for col := range r.Cols().All() {
				if !yield(Pt(row, col)) {
					return
				}
			}
		}
	}
}

// Inflate behaves like [cart.Rect.Inflate].
func (r Rect[T]) Inflate() Rect[T] {
	return fromBox(r.box().Inflate())
}

// InflateInPlace sets r to the result of [Rect.Inflate].
func (r *Rect[T]) InflateInPlace() {
	*r = r.Inflate()
}

// CheckedInflate grows every axis of r that does not already cover
// all of T, returning an error if neither can grow.
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

// MustInflate is like [Rect.CheckedInflate] but panics on error.
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

// Deflate returns r shrunk by one unit on every side, or r itself if
// either delta is less than three.
func (r Rect[T]) Deflate() Rect[T] {
	return fromBox(r.box().Deflate())
}

// DeflateInPlace sets r to the result of [Rect.Deflate].
func (r *Rect[T]) DeflateInPlace() {
	*r = r.Deflate()
}

// SaturatingResize behaves like [cart.Rect.SaturatingResize].
func (r Rect[T]) SaturatingResize(size uint64) Rect[T] {
	return fromBox(r.box().SaturatingResize(size))
}

// SaturatingResizeInPlace sets r to the result of [Rect.SaturatingResize].
func (r *Rect[T]) SaturatingResizeInPlace(size uint64) {
	*r = r.SaturatingResize(size)
}

// CheckedResize behaves like [cart.Rect.CheckedResize].
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

// MustResize is like [Rect.CheckedResize] but panics on error.
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

// SaturatingTranslate returns r moved by d, clamped to the range of T
// without changing its size.
func SaturatingTranslate[T geom.Integer, D geom.Signed](r Rect[T], d Point[D]) Rect[T] {
	return fromBox(r.box().SaturatingTranslate(int64(d.Row), int64(d.Col)))
}

// SaturatingTranslateInPlace sets r to the result of [SaturatingTranslate].
func SaturatingTranslateInPlace[T geom.Integer, D geom.Signed](r *Rect[T], d Point[D]) {
	*r = SaturatingTranslate(*r, d)
}

// CheckedTranslate returns r moved by d or an error wrapping
// [geom.ErrOutOfDomain] if any corner would leave the range of T.
func CheckedTranslate[T geom.Integer, D geom.Signed](r Rect[T], d Point[D]) (Rect[T], error) {
	b, err := r.box().CheckedTranslate(int64(d.Row), int64(d.Col))
	if err != nil {
		return r, err
	}
	return fromBox(b), nil
}

// CheckedTranslateInPlace stores the result of [CheckedTranslate]
// in r. r is not modified if it returns an error.
func CheckedTranslateInPlace[T geom.Integer, D geom.Signed](r *Rect[T], d Point[D]) error {
	n, err := CheckedTranslate(*r, d)
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustTranslate is like [CheckedTranslate] but panics on error.
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
