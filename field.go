package flowfield

import "math"

// FieldAngle returns the segment angle in radians at grid point (x, y) for
// the given cursor and radius. It has no hidden state.
func FieldAngle(x, y float64, c Cursor, radius float64) float64 {
	return (math.Cos(c.X*x*angleScale) + math.Sin(c.Y*y*angleScale)) * radius
}

// CursorDistance returns the squared distance from (x, y) to the cursor,
// scaled down by 1000. It is intentionally not the Euclidean distance.
func CursorDistance(x, y float64, c Cursor) float64 {
	dx := c.X - x
	dy := c.Y - y
	return (dx*dx + dy*dy) / distanceScale
}

// ClampLength bounds a scaled distance to [MinSegmentLength, MaxSegmentLength].
func ClampLength(distance float64) float64 {
	return clamp(distance, MinSegmentLength, MaxSegmentLength)
}

// SegmentEnd returns the end point of the segment rooted at (x, y).
func SegmentEnd(x, y, angle float64, c Cursor) Vec2 {
	length := ClampLength(CursorDistance(x, y, c))
	return Vec2{
		X: x + math.Cos(angle)*length,
		Y: y + math.Sin(angle)*length,
	}
}

// GridSize returns the number of columns and rows sampled on a width x height
// surface: ceil(width/cellSize) by ceil(height/cellSize).
func GridSize(width, height, cellSize int) (cols, rows int) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return 0, 0
	}
	return (width + cellSize - 1) / cellSize, (height + cellSize - 1) / cellSize
}

// EachGridPoint calls fn for every grid point, rows outermost, in the order
// the Animator draws them.
func EachGridPoint(width, height, cellSize int, fn func(x, y float64)) {
	if cellSize <= 0 {
		return
	}
	for y := 0; y < height; y += cellSize {
		for x := 0; x < width; x += cellSize {
			fn(float64(x), float64(y))
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
