package geom

import (
	"fmt"
	"math"
)

// An FSpan is the floating-point counterpart of [Span]. Its domain is
// given by [FloatBounds] and it treats one as the unit step, so its
// length is its delta plus one just like an integer span.
type FSpan[T Float] struct {
	Lo, Hi T
}

// FSp is shorthand for FSpan[T]{lo, hi}.
func FSp[T Float](lo, hi T) FSpan[T] {
	return FSpan[T]{lo, hi}
}

// FullFSpan returns the span covering the whole float domain of T.
func FullFSpan[T Float]() FSpan[T] {
	lo, hi := FloatBounds[T]()
	return FSpan[T]{lo, hi}
}

// Delta returns Hi - Lo.
func (s FSpan[T]) Delta() T {
	return s.Hi - s.Lo
}

// Len returns Delta plus one.
func (s FSpan[T]) Len() T {
	return s.Delta() + 1
}

// Contains reports whether v is in s.
func (s FSpan[T]) Contains(v T) bool {
	return (s.Lo <= v) && (v <= s.Hi)
}

// Pinned reports which ends of s are at or beyond the bounds of the
// domain.
func (s FSpan[T]) Pinned() (lo, hi bool) {
	dlo, dhi := FloatBounds[T]()
	return s.Lo <= dlo, s.Hi >= dhi
}

// Inflate behaves like [Span.Inflate].
func (s FSpan[T]) Inflate() FSpan[T] {
	dlo, dhi := FloatBounds[T]()
	atMin, atMax := s.Pinned()
	s.Lo = max(s.Lo-(1+b2f[T](atMax)-b2f[T](atMin)), dlo)
	s.Hi = min(s.Hi+(1+b2f[T](atMin)-b2f[T](atMax)), dhi)
	return s
}

func (s FSpan[T]) deflatable() bool {
	return s.Delta() >= MinSize
}

// Deflate behaves like [Span.Deflate].
func (s FSpan[T]) Deflate() FSpan[T] {
	if !s.deflatable() {
		return s
	}
	return FSpan[T]{s.Lo + 1, s.Hi - 1}
}

func validFSize[T Float](size T) bool {
	dlo, dhi := FloatBounds[T]()
	return (size >= MinSize) && (size-1 <= dhi-dlo)
}

func (s FSpan[T]) resizedLo(size T) T {
	diff := s.Delta() - (size - 1)
	return s.Lo + T(math.Trunc(float64(diff/2)))
}

// SaturatingResize behaves like [Span.SaturatingResize]. The offset
// from the original low end is truncated towards zero so that the
// result is biased the same way as it is for integers.
func (s FSpan[T]) SaturatingResize(size T) FSpan[T] {
	if !validFSize(size) {
		return s
	}

	dlo, dhi := FloatBounds[T]()
	lo := min(max(s.resizedLo(size), dlo), dhi-(size-1))
	return FSpan[T]{lo, lo + size - 1}
}

// CheckedResize behaves like [Span.CheckedResize].
func (s FSpan[T]) CheckedResize(size T) (FSpan[T], error) {
	if !validFSize(size) {
		return s, fmt.Errorf("resize to %v: %w", size, ErrInvalidSize)
	}

	dlo, dhi := FloatBounds[T]()
	lo := s.resizedLo(size)
	hi := lo + size - 1
	if (lo < dlo) || (hi > dhi) {
		return s, fmt.Errorf("resize to %v: %w", size, ErrOutOfDomain)
	}
	return FSpan[T]{lo, hi}, nil
}

// SaturatingShift behaves like [Span.SaturatingShift]. Shifting by
// NaN leaves s unchanged.
func (s FSpan[T]) SaturatingShift(n T) FSpan[T] {
	if math.IsNaN(float64(n)) {
		return s
	}

	dlo, dhi := FloatBounds[T]()
	delta := s.Delta()
	lo := min(max(s.Lo+n, dlo), dhi-delta)
	return FSpan[T]{lo, lo + delta}
}

// CheckedShift behaves like [Span.CheckedShift].
func (s FSpan[T]) CheckedShift(n T) (FSpan[T], error) {
	dlo, dhi := FloatBounds[T]()
	lo, hi := s.Lo+n, s.Hi+n
	if !((lo >= dlo) && (hi <= dhi)) {
		return s, fmt.Errorf("shift by %v: %w", n, ErrOutOfDomain)
	}
	return FSpan[T]{lo, hi}, nil
}

func b2f[T Float](b bool) T {
	if b {
		return 1
	}
	return 0
}
