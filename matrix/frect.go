package matrix

import (
	"deedles.dev/xrect/cart"
	"deedles.dev/xrect/geom"
)

// An FRect is the floating-point counterpart of [Rect].
type FRect[T geom.Float] struct {
	Min, Max Point[T]
}

// FRt is shorthand for FRect{Pt(row0, col0), Pt(row1, col1)}.
func FRt[T geom.Float](row0, col0, row1, col1 T) FRect[T] {
	return FRect[T]{Point[T]{row0, col0}, Point[T]{row1, col1}}
}

// FLargest returns the rectangle that covers the whole range of T.
func FLargest[T geom.Float]() FRect[T] {
	lo, hi := geom.FloatBounds[T]()
	return FRt(lo, lo, hi, hi)
}

// FRConv converts an FRect[In] to an FRect[Out].
func FRConv[Out, In geom.Float](r FRect[In]) FRect[Out] {
	return FRect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// FRectOf returns the integer rectangle r as an FRect[Out].
func FRectOf[Out geom.Float, In geom.Integer](r Rect[In]) FRect[Out] {
	return FRect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// String returns r as a range of cells, such as "r0.5c1:r2c3".
func (r FRect[T]) String() string {
	return r.Min.String() + ":" + r.Max.String()
}

// Cart returns r as a cartesian rectangle.
func (r FRect[T]) Cart() cart.FRect[T] {
	return cart.FRect[T]{Min: r.Min.Cart(), Max: r.Max.Cart()}
}

func (r FRect[T]) box() geom.Box[geom.FSpan[T], T, T] {
	return geom.Box[geom.FSpan[T], T, T]{A: r.Rows(), B: r.Cols()}
}

func fromFBox[T geom.Float](b geom.Box[geom.FSpan[T], T, T]) FRect[T] {
	return FRt(b.A.Lo, b.B.Lo, b.A.Hi, b.B.Hi)
}

// Rows returns the span of rows covered by r.
func (r FRect[T]) Rows() geom.FSpan[T] {
	return geom.FSp(r.Min.Row, r.Max.Row)
}

// Cols returns the span of columns covered by r.
func (r FRect[T]) Cols() geom.FSpan[T] {
	return geom.FSp(r.Min.Col, r.Max.Col)
}

// DeltaRow returns Max.Row - Min.Row.
func (r FRect[T]) DeltaRow() T {
	return r.Rows().Delta()
}

// DeltaCol returns Max.Col - Min.Col.
func (r FRect[T]) DeltaCol() T {
	return r.Cols().Delta()
}

// LenRow returns DeltaRow plus one.
func (r FRect[T]) LenRow() T {
	return r.Rows().Len()
}

// LenCol returns DeltaCol plus one.
func (r FRect[T]) LenCol() T {
	return r.Cols().Len()
}

// MaxDelta returns the larger of DeltaRow and DeltaCol.
func (r FRect[T]) MaxDelta() T {
	return max(r.DeltaRow(), r.DeltaCol())
}

// MaxLen returns the larger of LenRow and LenCol.
func (r FRect[T]) MaxLen() T {
	return max(r.LenRow(), r.LenCol())
}

// Contains reports whether p is inside of r, including its edges.
func (r FRect[T]) Contains(p Point[T]) bool {
	return r.Rows().Contains(p.Row) && r.Cols().Contains(p.Col)
}

// Inflate behaves like [cart.FRect.Inflate].
func (r FRect[T]) Inflate() FRect[T] {
	return fromFBox(r.box().Inflate())
}

// InflateInPlace sets r to the result of [FRect.Inflate].
func (r *FRect[T]) InflateInPlace() {
	*r = r.Inflate()
}

// CheckedInflate behaves like [cart.FRect.CheckedInflate].
func (r FRect[T]) CheckedInflate() (FRect[T], error) {
	b, err := r.box().CheckedInflate()
	if err != nil {
		return r, err
	}
	return fromFBox(b), nil
}

// CheckedInflateInPlace stores the result of [FRect.CheckedInflate]
// in r. r is not modified if it returns an error.
func (r *FRect[T]) CheckedInflateInPlace() error {
	n, err := r.CheckedInflate()
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustInflate is like [FRect.CheckedInflate] but panics on error.
func (r FRect[T]) MustInflate() FRect[T] {
	n, err := r.CheckedInflate()
	if err != nil {
		panic(err)
	}
	return n
}

// MustInflateInPlace is like MustInflate but stores the result in r.
func (r *FRect[T]) MustInflateInPlace() {
	*r = r.MustInflate()
}

// Deflate returns r shrunk by one unit on every side, or r itself if
// either delta is less than three.
func (r FRect[T]) Deflate() FRect[T] {
	return fromFBox(r.box().Deflate())
}

// DeflateInPlace sets r to the result of [FRect.Deflate].
func (r *FRect[T]) DeflateInPlace() {
	*r = r.Deflate()
}

// SaturatingResize behaves like [cart.FRect.SaturatingResize].
func (r FRect[T]) SaturatingResize(size T) FRect[T] {
	return fromFBox(r.box().SaturatingResize(size))
}

// SaturatingResizeInPlace sets r to the result of [FRect.SaturatingResize].
func (r *FRect[T]) SaturatingResizeInPlace(size T) {
	*r = r.SaturatingResize(size)
}

// CheckedResize behaves like [cart.FRect.CheckedResize].
func (r FRect[T]) CheckedResize(size T) (FRect[T], error) {
	b, err := r.box().CheckedResize(size)
	if err != nil {
		return r, err
	}
	return fromFBox(b), nil
}

// CheckedResizeInPlace stores the result of [FRect.CheckedResize]
// in r. r is not modified if it returns an error.
func (r *FRect[T]) CheckedResizeInPlace(size T) error {
	n, err := r.CheckedResize(size)
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustResize is like [FRect.CheckedResize] but panics on error.
func (r FRect[T]) MustResize(size T) FRect[T] {
	n, err := r.CheckedResize(size)
	if err != nil {
		panic(err)
	}
	return n
}

// MustResizeInPlace is like MustResize but stores the result in r.
func (r *FRect[T]) MustResizeInPlace(size T) {
	*r = r.MustResize(size)
}

// SaturatingTranslate returns r moved by d, clamped to the range of T
// without changing its size.
func (r FRect[T]) SaturatingTranslate(d Point[T]) FRect[T] {
	return fromFBox(r.box().SaturatingTranslate(d.Row, d.Col))
}

// SaturatingTranslateInPlace sets r to the result of [FRect.SaturatingTranslate].
func (r *FRect[T]) SaturatingTranslateInPlace(d Point[T]) {
	*r = r.SaturatingTranslate(d)
}

// CheckedTranslate returns r moved by d or an error wrapping
// [geom.ErrOutOfDomain] if any corner would leave the range of T.
func (r FRect[T]) CheckedTranslate(d Point[T]) (FRect[T], error) {
	b, err := r.box().CheckedTranslate(d.Row, d.Col)
	if err != nil {
		return r, err
	}
	return fromFBox(b), nil
}

// CheckedTranslateInPlace stores the result of [FRect.CheckedTranslate]
// in r. r is not modified if it returns an error.
func (r *FRect[T]) CheckedTranslateInPlace(d Point[T]) error {
	n, err := r.CheckedTranslate(d)
	if err != nil {
		return err
	}
	*r = n
	return nil
}

// MustTranslate is like [FRect.CheckedTranslate] but panics on error.
func (r FRect[T]) MustTranslate(d Point[T]) FRect[T] {
	n, err := r.CheckedTranslate(d)
	if err != nil {
		panic(err)
	}
	return n
}

// MustTranslateInPlace is like MustTranslate but stores the result in r.
func (r *FRect[T]) MustTranslateInPlace(d Point[T]) {
	*r = r.MustTranslate(d)
}
