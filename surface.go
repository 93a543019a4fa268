package flowfield

import "image/color"

// StrokeStyle resolves the stroke color at a surface position. Gradients and
// solid colors both satisfy it.
type StrokeStyle interface {
	ColorAt(x, y float64) color.Color
}

// Gradient is a stroke style built by a Surface. Stops are added once, right
// after creation.
type Gradient interface {
	StrokeStyle
	AddColorStop(offset float64, c color.Color)
}

// Surface is the 2D drawing context the Animator draws into. It is owned by
// the host; the Animator needs exclusive access only while Advance runs.
type Surface interface {
	ClearRect(x, y, width, height float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	// CreateLinearGradient returns a gradient running from (x0, y0) to
	// (x1, y1), or nil if the surface cannot build one.
	CreateLinearGradient(x0, y0, x1, y1 float64) Gradient
	SetLineWidth(width float64)
	SetStrokeStyle(style StrokeStyle)
}

// Canvas provides a Surface with mutable pixel dimensions. Context returns nil
// when no drawing context is available.
type Canvas interface {
	SetSize(width, height int)
	Context() Surface
}

// Solid is a single-color stroke style.
type Solid color.RGBA

// ColorAt returns the solid color regardless of position.
func (s Solid) ColorAt(x, y float64) color.Color {
	return color.RGBA(s)
}
