package flowfield

// Vec2 is a 2D vector used for grid points and segment endpoints.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Field constants. None of these are user-configurable.
const (
	// CellSize is the spacing in pixels between sampled grid points.
	CellSize = 7

	// RadiusBound is the magnitude past which the radius velocity flips.
	RadiusBound = 5.0

	// InitialRadius and InitialRadiusVelocity seed every new Animator.
	InitialRadius         = 5.0
	InitialRadiusVelocity = 0.03

	// FrameInterval is the minimum accumulated time in milliseconds between
	// redraws, targeting 60 draws per second regardless of callback rate.
	FrameInterval = 1000.0 / 60.0

	// MinSegmentLength and MaxSegmentLength bound every drawn segment.
	MinSegmentLength = 10.0
	MaxSegmentLength = 60.0

	// LineWidth is the stroke width in logical pixels.
	LineWidth = 1.0

	angleScale    = 0.0001
	distanceScale = 1000.0
)

// Gradient color stop offsets along the surface diagonal.
const (
	GradientStartOffset = 0.1
	GradientEndOffset   = 0.9
)
