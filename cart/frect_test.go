package cart_test

import (
	"math"
	"testing"

	"deedles.dev/xrect/cart"
	"deedles.dev/xrect/geom"
	"github.com/stretchr/testify/require"
)

func TestFRectSize(t *testing.T) {
	r := cart.FRt(0.5, 0, 3, 7.5)
	require.Equal(t, 2.5, r.DeltaX())
	require.Equal(t, 7.5, r.DeltaY())
	require.Equal(t, 3.5, r.LenX())
	require.Equal(t, 8.5, r.MaxLen())
	require.Equal(t, 7.5, r.MaxDelta())
	require.True(t, r.Contains(cart.Pt(0.5, 7.5)))
	require.False(t, r.Contains(cart.Pt(0.49, 7.5)))
}

func TestFRectInflate(t *testing.T) {
	r := cart.FRt[float32](0, 0, 10, 10)
	require.Equal(t, cart.FRt[float32](-1, -1, 11, 11), r.Inflate())

	wide := cart.FRt(-geom.MaxF64, 10, geom.MaxF64, 50)
	require.Equal(t, wide, wide.Inflate())
	require.Equal(t, cart.FRt(-geom.MaxF64, 9, geom.MaxF64, 51), wide.MustInflate())

	l := cart.FLargest[float64]()
	_, err := l.CheckedInflate()
	require.ErrorIs(t, err, geom.ErrOutOfDomain)
	require.Error(t, l.CheckedInflateInPlace())
	require.Equal(t, cart.FLargest[float64](), l)
}

func TestFRectDeflate(t *testing.T) {
	r := cart.FRt(0.0, 0, 10, 10)
	r.DeflateInPlace()
	require.Equal(t, cart.FRt(1.0, 1, 9, 9), r)
	require.Equal(t, cart.FRt(0.0, 0, 2, 10), cart.FRt(0.0, 0, 2, 10).Deflate())
}

func TestFRectResize(t *testing.T) {
	orig := cart.RectF64{Min: cart.Pt(-5.0, -5), Max: cart.Pt(5.0, 5)}

	r := orig.SaturatingResize(8)
	require.Equal(t, cart.FRt(-4.0, -4, 3, 3), r)
	require.Equal(t, orig, r.MustResize(11))

	require.NoError(t, r.CheckedResizeInPlace(11))
	require.Equal(t, orig, r)

	require.Equal(t, orig, orig.SaturatingResize(math.NaN()))
	_, err := orig.CheckedResize(2)
	require.ErrorIs(t, err, geom.ErrInvalidSize)
	require.Panics(t, func() { orig.MustResizeInPlace(1) })
}

func TestFRectTranslate(t *testing.T) {
	r := cart.FRt(0.0, 0, 10, 10)
	require.Equal(t, cart.FRt(10.5, -2, 20.5, 8), r.SaturatingTranslate(cart.Pt(10.5, -2)))
	require.Equal(t, cart.FRt(0.0, 5, 10, 15), r.SaturatingTranslate(cart.Pt(math.NaN(), 5)))

	got, err := r.CheckedTranslate(cart.Pt(math.NaN(), 5))
	require.ErrorIs(t, err, geom.ErrOutOfDomain)
	require.Equal(t, r, got)

	require.ErrorIs(t, r.CheckedTranslateInPlace(cart.Pt(2*geom.MaxF64, 0)), geom.ErrOutOfDomain)
	require.Equal(t, cart.FRt(0.0, 0, 10, 10), r)

	r.MustTranslateInPlace(cart.Pt(1.0, 1))
	require.Equal(t, cart.FRt(1.0, 1, 11, 11), r)
	require.Panics(t, func() { r.MustTranslate(cart.Pt(math.Inf(-1), 0)) })
}
