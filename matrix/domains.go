package matrix

// Rectangles and points for each fixed-width domain.
type (
	RectI8  = Rect[int8]
	RectI16 = Rect[int16]
	RectI32 = Rect[int32]
	RectI64 = Rect[int64]
	RectU8  = Rect[uint8]
	RectU16 = Rect[uint16]
	RectU32 = Rect[uint32]
	RectU64 = Rect[uint64]
	RectF32 = FRect[float32]
	RectF64 = FRect[float64]

	PointI8  = Point[int8]
	PointI16 = Point[int16]
	PointI32 = Point[int32]
	PointI64 = Point[int64]
	PointU8  = Point[uint8]
	PointU16 = Point[uint16]
	PointU32 = Point[uint32]
	PointU64 = Point[uint64]
	PointF32 = Point[float32]
	PointF64 = Point[float64]
)
