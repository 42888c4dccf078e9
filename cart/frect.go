package cart

import "deedles.dev/xrect/geom"

// An FRect is the floating-point counterpart of [Rect]. Its range is
// given by [geom.FloatBounds] and it treats one as the unit step, so
// LenX is DeltaX plus one just like it is for a Rect.
type FRect[T geom.Float] struct {
	Min, Max Point[T]
}

// FRt is shorthand for FRect{Pt(x0, y0), Pt(x1, y1)}.
func FRt[T geom.Float](x0, y0, x1, y1 T) FRect[T] {
	return FRect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// FLargest returns the rectangle that covers the whole range of T.
func FLargest[T geom.Float]() FRect[T] {
	lo, hi := geom.FloatBounds[T]()
	return FRt(lo, lo, hi, hi)
}

// FRConv converts an FRect[In] to an FRect[Out]. Narrowing can push
// coordinates outside of the bounds of Out, and operations on such a
// rectangle treat those coordinates as pinned.
func FRConv[Out, In geom.Float](r FRect[In]) FRect[Out] {
	return FRect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// FRectOf returns the integer rectangle r as an FRect[Out].
func FRectOf[Out geom.Float, In geom.Integer](r Rect[In]) FRect[Out] {
	return FRect[Out]{PConv[Out](r.Min), PConv[Out](r.Max)}
}

// String returns a string representation of r like "(0.5,1)-(3,4)".
func (r FRect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

func (r FRect[T]) box() geom.Box[geom.FSpan[T], T, T] {
	return geom.Box[geom.FSpan[T], T, T]{A: r.X(), B: r.Y()}
}

func fromFBox[T geom.Float](b geom.Box[geom.FSpan[T], T, T]) FRect[T] {
	return FRt(b.A.Lo, b.B.Lo, b.A.Hi, b.B.Hi)
}

// X returns the span of r along the X axis.
func (r FRect[T]) X() geom.FSpan[T] {
	return geom.FSp(r.Min.X, r.Max.X)
}

// Y returns the span of r along the Y axis.
func (r FRect[T]) Y() geom.FSpan[T] {
	return geom.FSp(r.Min.Y, r.Max.Y)
}

// DeltaX returns Max.X - Min.X.
func (r FRect[T]) DeltaX() T {
	return r.X().Delta()
}

// DeltaY returns Max.Y - Min.Y.
func (r FRect[T]) DeltaY() T {
	return r.Y().Delta()
}

// MaxDelta returns the larger of DeltaX and DeltaY.
func (r FRect[T]) MaxDelta() T {
	return max(r.DeltaX(), r.DeltaY())
}

// LenX returns DeltaX plus one.
func (r FRect[T]) LenX() T {
	return r.X().Len()
}

// LenY returns DeltaY plus one.
func (r FRect[T]) LenY() T {
	return r.Y().Len()
}

// MaxLen returns the larger of LenX and LenY.
func (r FRect[T]) MaxLen() T {
	return max(r.LenX(), r.LenY())
}

// Contains reports whether p is inside of r, including its edges.
func (r FRect[T]) Contains(p Point[T]) bool {
	return r.X().Contains(p.X) && r.Y().Contains(p.Y)
}

// Inflate behaves like [Rect.Inflate].
func (r FRect[T]) Inflate() FRect[T] {
	return fromFBox(r.box().Inflate())
}

// InflateInPlace sets r to the result of [FRect.Inflate].
func (r *FRect[T]) InflateInPlace() {
	*r = r.Inflate()
}

// CheckedInflate behaves like [Rect.CheckedInflate].
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

// Deflate behaves like [Rect.Deflate].
func (r FRect[T]) Deflate() FRect[T] {
	return fromFBox(r.box().Deflate())
}

// DeflateInPlace sets r to the result of [FRect.Deflate].
func (r *FRect[T]) DeflateInPlace() {
	*r = r.Deflate()
}

// SaturatingResize behaves like [Rect.SaturatingResize]. Half of the
// difference between the old and new lengths is truncated towards
// zero before it is applied to Min, so the result is biased the same
// way as it is for integers.
func (r FRect[T]) SaturatingResize(size T) FRect[T] {
	return fromFBox(r.box().SaturatingResize(size))
}

// SaturatingResizeInPlace sets r to the result of [FRect.SaturatingResize].
func (r *FRect[T]) SaturatingResizeInPlace(size T) {
	*r = r.SaturatingResize(size)
}

// CheckedResize behaves like [Rect.CheckedResize].
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

// SaturatingTranslate behaves like the package-level
// [SaturatingTranslate]. A NaN component of d leaves that axis
// unchanged.
func (r FRect[T]) SaturatingTranslate(d Point[T]) FRect[T] {
	return fromFBox(r.box().SaturatingTranslate(d.X, d.Y))
}

// SaturatingTranslateInPlace sets r to the result of [FRect.SaturatingTranslate].
func (r *FRect[T]) SaturatingTranslateInPlace(d Point[T]) {
	*r = r.SaturatingTranslate(d)
}

// CheckedTranslate behaves like the package-level [CheckedTranslate].
func (r FRect[T]) CheckedTranslate(d Point[T]) (FRect[T], error) {
	b, err := r.box().CheckedTranslate(d.X, d.Y)
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
