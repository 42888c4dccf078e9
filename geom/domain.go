package geom

import (
	"math"
	"unsafe"
)

// Bounds of the float domains. They are half of the true range so
// that the distance between them, and that distance plus one, are
// still finite.
const (
	MaxF32 = math.MaxFloat32 / 2
	MaxF64 = math.MaxFloat64 / 2
)

// Bounds returns the smallest and largest values representable by T.
func Bounds[T Integer]() (lo, hi T) {
	hi = ^T(0)
	if hi > 0 {
		return 0, hi
	}

	hi = T(^uint64(0) >> (65 - 8*unsafe.Sizeof(hi)))
	return ^hi, hi
}

// FloatBounds returns the bounds of the float domain T. See [MaxF32]
// and [MaxF64].
func FloatBounds[T Float]() (lo, hi T) {
	if unsafe.Sizeof(hi) == 4 {
		v := float32(MaxF32)
		return T(-v), T(v)
	}

	v := float64(MaxF64)
	return T(-v), T(v)
}

// DomainLen returns the number of values in the integer domain T,
// saturating at math.MaxUint64 for the 64-bit domains.
func DomainLen[T Integer]() uint64 {
	return domainOf[T]().len()
}

// AbsDiff returns |a - b| without overflow. The result always fits
// because it is at most the width of T's domain.
func AbsDiff[T Integer](a, b T) uint64 {
	if a < b {
		a, b = b, a
	}
	return uint64(a) - uint64(b)
}

// domain describes an integer domain in terms of offsets from its
// minimum. Offsets let every integer type, signed or not, share the
// same unsigned arithmetic.
type domain struct {
	min   uint64
	width uint64
}

func domainOf[T Integer]() domain {
	lo, hi := Bounds[T]()
	return domain{
		min:   uint64(lo),
		width: uint64(hi) - uint64(lo),
	}
}

func (d domain) len() uint64 {
	if d.width == math.MaxUint64 {
		return d.width
	}
	return d.width + 1
}

func offset[T Integer](d domain, v T) uint64 {
	return uint64(v) - d.min
}

func value[T Integer](d domain, off uint64) T {
	return T(off + d.min)
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func addSat(a, b, limit uint64) uint64 {
	if b > limit-a {
		return limit
	}
	return a + b
}

func subSat(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// Fits reports whether v is representable by Out.
func Fits[Out, In Integer](v In) bool {
	o := Out(v)
	return (In(o) == v) && ((o < 0) == (v < 0))
}
