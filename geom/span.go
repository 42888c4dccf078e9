package geom

import (
	"fmt"
	"iter"
	"math"
)

// A Span is the closed interval of an integer domain containing the
// values v with Lo <= v <= Hi. It is well-formed if Lo <= Hi. Methods
// are only defined for well-formed spans and always return
// well-formed spans for them.
type Span[T Integer] struct {
	Lo, Hi T
}

// Sp is shorthand for Span[T]{lo, hi}.
func Sp[T Integer](lo, hi T) Span[T] {
	return Span[T]{lo, hi}
}

// FullSpan returns the span covering all of T.
func FullSpan[T Integer]() Span[T] {
	lo, hi := Bounds[T]()
	return Span[T]{lo, hi}
}

func (s Span[T]) offsets() (d domain, lo, hi uint64) {
	d = domainOf[T]()
	return d, offset(d, s.Lo), offset(d, s.Hi)
}

func spanAt[T Integer](d domain, lo, hi uint64) Span[T] {
	return Span[T]{value[T](d, lo), value[T](d, hi)}
}

// Delta returns Hi - Lo.
func (s Span[T]) Delta() uint64 {
	return uint64(s.Hi) - uint64(s.Lo)
}

// Len returns the number of values in s, saturating at
// math.MaxUint64.
func (s Span[T]) Len() uint64 {
	d := s.Delta()
	if d == math.MaxUint64 {
		return d
	}
	return d + 1
}

// Contains reports whether v is in s.
func (s Span[T]) Contains(v T) bool {
	return (s.Lo <= v) && (v <= s.Hi)
}

// Pinned reports which ends of s are at the bounds of the domain.
func (s Span[T]) Pinned() (lo, hi bool) {
	dlo, dhi := Bounds[T]()
	return s.Lo == dlo, s.Hi == dhi
}

// All returns an iterator over every value in s in ascending order.
func (s Span[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := s.Lo; ; v++ {
			if !yield(v) || (v == s.Hi) {
				return
			}
		}
	}
}

// Inflate grows s by one on each end. An end that is already at a
// bound of the domain stays put and the other end grows by two
// instead, saturating at its own bound.
func (s Span[T]) Inflate() Span[T] {
	d, lo, hi := s.offsets()
	atMin, atMax := b2u(lo == 0), b2u(hi == d.width)
	lo = subSat(lo, 1+atMax-atMin)
	hi = addSat(hi, 1+atMin-atMax, d.width)
	return spanAt[T](d, lo, hi)
}

func (s Span[T]) deflatable() bool {
	return s.Delta() >= MinSize
}

// Deflate shrinks s by one on each end. If s has a delta of less than
// three it is returned unchanged.
func (s Span[T]) Deflate() Span[T] {
	if !s.deflatable() {
		return s
	}
	return Span[T]{s.Lo + 1, s.Hi - 1}
}

// resizedLo returns the offset of the low end of the span [lo, hi]
// resized to size around its center, biased towards lo. ok is false
// if the result falls below the domain's minimum.
func resizedLo(lo, hi, size uint64) (off uint64, ok bool) {
	delta, target := hi-lo, size-1
	if delta >= target {
		return lo + (delta-target)/2, true
	}

	grow := (target - delta) / 2
	if grow > lo {
		return 0, false
	}
	return lo - grow, true
}

func (d domain) validSize(size uint64) bool {
	return (size >= MinSize) && (size-1 <= d.width)
}

// SaturatingResize returns s resized to have a length of size,
// keeping it as close to its original center as possible. If the
// result would not fit into the domain, it is shifted until it does.
// If size is less than MinSize or larger than the domain, s is
// returned unchanged.
func (s Span[T]) SaturatingResize(size uint64) Span[T] {
	d, lo, hi := s.offsets()
	if !d.validSize(size) {
		return s
	}

	lo, _ = resizedLo(lo, hi, size)
	lo = min(lo, d.width-(size-1))
	return spanAt[T](d, lo, lo+size-1)
}

// CheckedResize is like SaturatingResize but returns an error instead
// of shifting the span or ignoring an invalid size.
func (s Span[T]) CheckedResize(size uint64) (Span[T], error) {
	d, lo, hi := s.offsets()
	if !d.validSize(size) {
		return s, fmt.Errorf("resize to %v: %w", size, ErrInvalidSize)
	}

	lo, ok := resizedLo(lo, hi, size)
	if !ok || (lo > d.width-(size-1)) {
		return s, fmt.Errorf("resize to %v: %w", size, ErrOutOfDomain)
	}
	return spanAt[T](d, lo, lo+size-1), nil
}

// SaturatingShift returns s moved by n. The result is clamped to the
// domain without changing its length.
func (s Span[T]) SaturatingShift(n int64) Span[T] {
	d, lo, hi := s.offsets()
	delta := hi - lo
	if n >= 0 {
		lo += min(uint64(n), d.width-hi)
	} else {
		lo -= min(-uint64(n), lo)
	}
	return spanAt[T](d, lo, lo+delta)
}

// CheckedShift returns s moved by n or an error if either end of the
// result would be outside of the domain.
func (s Span[T]) CheckedShift(n int64) (Span[T], error) {
	d, lo, hi := s.offsets()
	if n >= 0 {
		if uint64(n) > d.width-hi {
			return s, fmt.Errorf("shift by %v: %w", n, ErrOutOfDomain)
		}
		return spanAt[T](d, lo+uint64(n), hi+uint64(n)), nil
	}

	mag := -uint64(n)
	if mag > lo {
		return s, fmt.Errorf("shift by %v: %w", n, ErrOutOfDomain)
	}
	return spanAt[T](d, lo-mag, hi-mag), nil
}

// MoveTo returns s moved so that it starts at lo. If it would then
// extend past the domain's maximum, it is moved back just far enough
// to fit.
func (s Span[T]) MoveTo(lo T) Span[T] {
	d, slo, shi := s.offsets()
	delta := shi - slo
	off := min(offset(d, lo), d.width-delta)
	return spanAt[T](d, off, off+delta)
}

// MoveEndTo returns s moved so that it ends at hi. If it would then
// extend past the domain's minimum, it is moved forward just far
// enough to fit.
func (s Span[T]) MoveEndTo(hi T) Span[T] {
	d, slo, shi := s.offsets()
	delta := shi - slo
	off := max(offset(d, hi), delta)
	return spanAt[T](d, off-delta, off)
}

// After returns the span with the given delta that starts
// immediately after s. ok is false if no such span fits into the
// domain.
func (s Span[T]) After(delta uint64) (next Span[T], ok bool) {
	d, _, hi := s.offsets()
	if delta >= d.width-hi {
		return s, false
	}
	return spanAt[T](d, hi+1, hi+1+delta), true
}

// Next returns the span of the same length that starts immediately
// after s. ok is false if no such span fits into the domain.
func (s Span[T]) Next() (next Span[T], ok bool) {
	return s.After(s.Delta())
}

// WithDelta returns the span with the given delta that starts at
// s.Lo. If it would extend past the domain's maximum, it is moved back
// just far enough to fit, and if delta is larger than the domain the
// whole domain is returned.
func (s Span[T]) WithDelta(delta uint64) Span[T] {
	d, lo, _ := s.offsets()
	delta = min(delta, d.width)
	lo = min(lo, d.width-delta)
	return spanAt[T](d, lo, lo+delta)
}

// Cut splits s into a head containing the first n values and a tail
// containing the rest. ok is false unless both are non-empty.
func (s Span[T]) Cut(n uint64) (head, tail Span[T], ok bool) {
	d, lo, hi := s.offsets()
	if (n == 0) || (n > hi-lo) {
		return s, s, false
	}
	return spanAt[T](d, lo, lo+n-1), spanAt[T](d, lo+n, hi), true
}

// Halve cuts s in half. If s has an odd length, the extra value goes
// to the head.
func (s Span[T]) Halve() (head, tail Span[T], ok bool) {
	return s.Cut(s.Delta()/2 + 1)
}

// TwoThirds cuts s so that the head holds two thirds of its values,
// rounded down.
func (s Span[T]) TwoThirds() (head, tail Span[T], ok bool) {
	// floor(2(delta+1)/3) without overflowing at the 64-bit width.
	delta := s.Delta()
	return s.Cut(2*(delta/3) + (2*(delta%3)+2)/3)
}

// Split returns an iterator over n consecutive spans of equal length
// starting at s.Lo. Values at the end of s left over by the division
// are not covered. It yields nothing if n is not positive or if s has
// fewer than n values.
func (s Span[T]) Split(n int) iter.Seq[Span[T]] {
	return func(yield func(Span[T]) bool) {
		if n <= 0 {
			return
		}
		if n == 1 {
			yield(s)
			return
		}

		// Len saturates for the full 64-bit domains, so work from the
		// delta instead.
		delta, un := s.Delta(), uint64(n)
		size := delta / un
		if delta%un == un-1 {
			size++
		}
		if size == 0 {
			return
		}

		d, lo, _ := s.offsets()
		for range n {
			if !yield(spanAt[T](d, lo, lo+size-1)) {
				return
			}
			lo += size
		}
	}
}
