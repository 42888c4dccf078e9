package cart

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xrect/geom"
)

// Xs returns an iterator over every X coordinate of r from left to
// right.
func (r Rect[T]) Xs() iter.Seq[T] {
	return r.X().All()
}

// Ys returns an iterator over every Y coordinate of r from top to
// bottom.
func (r Rect[T]) Ys() iter.Seq[T] {
	return r.Y().All()
}

// Points returns an iterator over every point in r, row by row.
func (r Rect[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for y := range r.Ys() {
			for x := range r.Xs() {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// halve cuts r in half across its width if across is true and across
// its height otherwise.
func halve[T geom.Integer](r Rect[T], across bool) (Rect[T], Rect[T], bool) {
	if across {
		x0, x1, ok := r.X().Halve()
		return fromSpans(x0, r.Y()), fromSpans(x1, r.Y()), ok
	}
	y0, y1, ok := r.Y().Halve()
	return fromSpans(r.X(), y0), fromSpans(r.X(), y1), ok
}

// TileRightThenDown fills tiles with a splitting of r that
// recursively halves what remains, alternating between a cut to the
// right and a cut downwards. In other words,
//
//	tiles := make([]cart.Rect[int], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
//
// If the remainder gets too small to cut, fewer tiles are produced.
func TileRightThenDown[T geom.Integer](tiles []Rect[T], r Rect[T]) int {
	return Collect(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T geom.Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		rest, across := r, true
		for range numtiles - 1 {
			c, n, ok := halve(rest, across)
			if !ok {
				break
			}
			if !yield(c) {
				return
			}
			rest, across = n, !across
		}

		yield(rest)
	}
}

// TileTwoThirdsSidebar fills tiles with a splitting of r where the
// first tile is two-thirds of the width of r and the rest split the
// remaining space evenly and vertically. A single tile covers all of
// r.
func TileTwoThirdsSidebar[T geom.Integer](tiles []Rect[T], r Rect[T]) int {
	return Collect(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T geom.Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		wide, side, ok := r.X().TwoThirds()
		if !ok || (numtiles == 1) {
			yield(r)
			return
		}

		if !yield(fromSpans(wide, r.Y())) {
			return
		}
		for t := range TiledEvenVertically(numtiles-1, fromSpans(side, r.Y())) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically fills tiles with an even, vertical splitting of
// r. In other words,
//
//	tiles := make([]cart.Rect[int], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
//
// Rows at the bottom of r left over by the division are not covered.
// Like all of the Tile functions, it returns the number of tiles
// written.
func TileEvenVertically[T geom.Integer](tiles []Rect[T], r Rect[T]) int {
	return Collect(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T geom.Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		x := r.X()
		for y := range r.Y().Split(numtiles) {
			if !yield(fromSpans(x, y)) {
				return
			}
		}
	}
}

// TileEvenHorizontally is the horizontal counterpart of
// [TileEvenVertically].
func TileEvenHorizontally[T geom.Integer](tiles []Rect[T], r Rect[T]) int {
	return Collect(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T geom.Integer](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		y := r.Y()
		for x := range r.X().Split(numtiles) {
			if !yield(fromSpans(x, y)) {
				return
			}
		}
	}
}

// TileRows fills tiles with a table of rows and columns covering r.
// Every row but the last has cols columns. The last row is split
// evenly among the tiles that remain.
func TileRows[T geom.Integer](tiles []Rect[T], r Rect[T], cols int) int {
	return Collect(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T geom.Integer](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, r) {
			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing a vertical stack of rectangles below the
// first. The stack ends with the last rectangle that fits entirely
// into T's range.
func VerticalStack[T geom.Integer](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		x, y := first.X(), first.Y()
		for {
			if !yield(fromSpans(x, y)) {
				return
			}

			var ok bool
			y, ok = y.Next()
			if !ok {
				return
			}
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, widening all of them to the width
// of the widest. Each keeps its own height. A rectangle that would
// extend past the bottom of T's range is instead placed against it,
// overlapping the one above.
func ArrangeVerticalStack[T geom.Integer](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	var width uint64
	for _, r := range rects {
		width = max(width, r.DeltaX())
	}
	x := rects[0].X().WithDelta(width)
	_, bottom := geom.Bounds[T]()

	prev := rects[0].Y()
	rects[0] = fromSpans(x, prev)
	for i := 1; i < len(rects); i++ {
		y, ok := prev.After(rects[i].DeltaY())
		if !ok {
			y = rects[i].Y().MoveEndTo(bottom)
		}
		rects[i] = fromSpans(x, y)
		prev = y
	}
}

// Align moves inner so that the specified edges line up with the
// corresponding edges of outer, stretching it to the full extent of
// outer along an axis if both of that axis's edges are specified. An
// axis with neither edge specified is left alone. The size of inner
// is otherwise preserved, saturating at the bounds of T.
func Align[T geom.Integer](outer, inner Rect[T], edges geom.Edges) Rect[T] {
	x, y := inner.X(), inner.Y()
	switch {
	case edges.Has(geom.EdgeLeft | geom.EdgeRight):
		x = outer.X()
	case edges.Has(geom.EdgeLeft):
		x = x.MoveTo(outer.Min.X)
	case edges.Has(geom.EdgeRight):
		x = x.MoveEndTo(outer.Max.X)
	}
	switch {
	case edges.Has(geom.EdgeTop | geom.EdgeBottom):
		y = outer.Y()
	case edges.Has(geom.EdgeTop):
		y = y.MoveTo(outer.Min.Y)
	case edges.Has(geom.EdgeBottom):
		y = y.MoveEndTo(outer.Max.Y)
	}

	return fromSpans(x, y)
}

// Collect fills dst with rectangles from seq, stopping when either
// runs out. It returns the number of rectangles written.
func Collect[T geom.Integer](dst []Rect[T], seq iter.Seq[Rect[T]]) int {
	var n int
	for i, r := range xiter.Enumerate(seq) {
		if i >= len(dst) {
			break
		}
		dst[i] = r
		n++
	}
	return n
}
