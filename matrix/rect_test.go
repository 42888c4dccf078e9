package matrix_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"deedles.dev/xrect/cart"
	"deedles.dev/xrect/geom"
	"deedles.dev/xrect/matrix"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	r := matrix.Rt[uint16](2, 4, 5, 20)
	require.Equal(t, uint64(3), r.DeltaRow())
	require.Equal(t, uint64(16), r.DeltaCol())
	require.Equal(t, uint64(4), r.LenRow())
	require.Equal(t, uint64(17), r.LenCol())
	require.Equal(t, uint64(16), r.MaxDelta())
	require.Equal(t, uint64(17), r.MaxLen())
	require.Equal(t, matrix.Pt[uint64](3, 16), r.Size())
}

func TestCart(t *testing.T) {
	r := matrix.Rt(1, 2, 3, 4)
	c := r.Cart()
	require.Equal(t, cart.Rt(2, 1, 4, 3), c)
	require.Equal(t, r, matrix.RectFromCart(c))

	require.Equal(t, geom.EdgeTop, matrix.Rt[int8](-128, 0, 0, 0).Pinned())
	require.Equal(t, geom.EdgeRight, matrix.Rt[int8](0, 0, 0, 127).Pinned())
}

func TestCells(t *testing.T) {
	r := matrix.Rt(0, 0, 1, 2)
	require.Equal(t, []matrix.Point[int]{
		matrix.Pt(0, 0), matrix.Pt(0, 1), matrix.Pt(0, 2),
		matrix.Pt(1, 0), matrix.Pt(1, 1), matrix.Pt(1, 2),
	}, slices.Collect(r.Cells()))

	for p := range r.Cells() {
		require.True(t, r.Contains(p))
	}
	require.False(t, r.Contains(matrix.Pt(2, 0)))
	require.False(t, r.Contains(matrix.Pt(0, -1)))
}

func TestInflate(t *testing.T) {
	r := matrix.Rt[int32](math.MinInt32, 10, math.MaxInt32, 50)
	require.Equal(t, r, r.Inflate())

	got, err := r.CheckedInflate()
	require.NoError(t, err)
	require.Equal(t, matrix.Rt[int32](math.MinInt32, 9, math.MaxInt32, 51), got)

	l := matrix.Largest[int32]()
	require.ErrorIs(t, l.CheckedInflateInPlace(), geom.ErrOutOfDomain)
	require.Equal(t, matrix.Largest[int32](), l)
	require.Panics(t, func() { l.MustInflate() })

	m := matrix.Rt[int32](0, math.MaxInt32-1, 5, math.MaxInt32)
	m.InflateInPlace()
	require.Equal(t, matrix.Rt[int32](-1, math.MaxInt32-3, 6, math.MaxInt32), m)
	m.MustInflateInPlace()
	require.Equal(t, matrix.Rt[int32](-2, math.MaxInt32-5, 7, math.MaxInt32), m)
}

func TestDeflate(t *testing.T) {
	r := matrix.Rt[uint32](0, 0, 3, 10)
	require.Equal(t, matrix.Rt[uint32](1, 1, 2, 9), r.Deflate())

	thin := matrix.Rt[uint32](0, 0, 10, 1)
	thin.DeflateInPlace()
	require.Equal(t, matrix.Rt[uint32](0, 0, 10, 1), thin)
}

func TestResize(t *testing.T) {
	r := matrix.Rt[int64](-5, -5, 5, 5)
	require.Equal(t, matrix.Rt[int64](-4, -4, 4, 4), r.SaturatingResize(9))
	require.Equal(t, matrix.Rt[int64](-4, -4, 3, 3), r.MustResize(8))

	r.MustResizeInPlace(8)
	require.NoError(t, r.CheckedResizeInPlace(11))
	require.Equal(t, matrix.Rt[int64](-5, -5, 5, 5), r)

	r.SaturatingResizeInPlace(2)
	require.Equal(t, matrix.Rt[int64](-5, -5, 5, 5), r)

	edge := matrix.Rt[int64](math.MinInt64, 0, math.MinInt64+2, 2)
	_, err := edge.CheckedResize(5)
	require.ErrorIs(t, err, geom.ErrOutOfDomain)
	require.Equal(t, matrix.Rt[int64](math.MinInt64, -1, math.MinInt64+4, 3), edge.SaturatingResize(5))
}

func TestTranslate(t *testing.T) {
	r := matrix.Rt[uint16](5, 5, 10, 10)
	require.Equal(t, matrix.Rt[uint16](0, 65530, 5, 65535), matrix.SaturatingTranslate(r, matrix.Pt[int32](-10, 70000)))

	got, err := matrix.CheckedTranslate(r, matrix.Pt[int32](-5, 10))
	require.NoError(t, err)
	require.Equal(t, matrix.Rt[uint16](0, 15, 5, 20), got)

	require.ErrorIs(t, matrix.CheckedTranslateInPlace(&r, matrix.Pt[int32](-6, 0)), geom.ErrOutOfDomain)
	require.Equal(t, matrix.Rt[uint16](5, 5, 10, 10), r)
	require.Panics(t, func() { matrix.MustTranslateInPlace(&r, matrix.Pt[int8](0, -6)) })

	matrix.SaturatingTranslateInPlace(&r, matrix.Pt[int8](1, 1))
	matrix.MustTranslateInPlace(&r, matrix.Pt[int8](1, 1))
	require.Equal(t, matrix.Rt[uint16](7, 7, 12, 12), r)
	require.Equal(t, matrix.Rt[uint16](8, 7, 13, 12), matrix.MustTranslate(r, matrix.Pt[int8](1, 0)))
}

func TestFRect(t *testing.T) {
	r := matrix.FRt[float32](0, 0, 10, 10)
	require.Equal(t, float32(10), r.DeltaRow())
	require.Equal(t, float32(11), r.LenCol())
	require.Equal(t, cart.FRt[float32](0, 0, 10, 10), r.Cart())
	require.Equal(t, matrix.FRt[float32](-1, -1, 11, 11), r.Inflate())
	require.Equal(t, matrix.FRt[float32](1, 1, 9, 9), r.Deflate())
	require.Equal(t, matrix.FRt[float32](1, 1, 9, 9), r.MustResize(9))
	require.Equal(t, matrix.FRt[float32](2, -3, 12, 7), r.SaturatingTranslate(matrix.Pt[float32](2, -3)))

	l := matrix.FLargest[float32]()
	_, err := l.CheckedInflate()
	require.ErrorIs(t, err, geom.ErrOutOfDomain)

	_, err = r.CheckedResize(1)
	require.ErrorIs(t, err, geom.ErrInvalidSize)

	_, err = r.CheckedTranslate(matrix.Pt[float32](2*geom.MaxF32, 0))
	require.ErrorIs(t, err, geom.ErrOutOfDomain)
}

func TestConv(t *testing.T) {
	r := matrix.Rt[uint8](0, 10, 200, 20)
	require.Equal(t, matrix.Rt[uint32](0, 10, 200, 20), matrix.RConv[uint32](r))

	_, err := matrix.CheckedRConv[int8](r)
	require.ErrorIs(t, err, geom.ErrOutOfDomain)

	got, err := matrix.CheckedRConv[int16](r)
	require.NoError(t, err)
	require.Equal(t, matrix.Rt[int16](0, 10, 200, 20), got)

	require.Equal(t, matrix.Pt[float32](1, 2), matrix.PConv[float32](matrix.Pt(1, 2)))
	require.Equal(t, matrix.FRt(0.0, 10, 200, 20), matrix.FRectOf[float64](r))
	require.Equal(t, matrix.FRt(0.0, 1, 2, 3), matrix.FRConv[float64](matrix.FRt[float32](0, 1, 2, 3)))
}

func TestString(t *testing.T) {
	require.Equal(t, "r3c4", matrix.Pt(3, 4).String())
	require.Equal(t, "r0c0:r3c4", fmt.Sprint(matrix.Rt[uint16](0, 0, 3, 4)))
	require.Equal(t, "r0.5c1:r2c3", matrix.FRt(0.5, 1, 2, 3).String())
}
