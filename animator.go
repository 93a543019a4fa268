package flowfield

import (
	"time"

	"golang.org/x/image/colornames"
)

// Animator draws the flow field onto one Surface. It is created for a fixed
// surface size and replaced, never resized, when the surface changes.
//
// An Animator is not safe for concurrent use. Advance, the pointer writes it
// observes, and the surface it draws to all belong to one goroutine.
type Animator struct {
	surface       Surface
	width, height int
	cellSize      int

	radius         float64
	radiusVelocity float64

	lastFrameTime   float64
	accumulatedTime float64

	strokeStyle StrokeStyle

	debug bool
	stats FrameStats
}

// NewAnimator prepares the stroke style on surface and returns an Animator
// for a width x height drawing area. It draws nothing.
func NewAnimator(surface Surface, width, height int) *Animator {
	a := &Animator{
		surface:        surface,
		width:          width,
		height:         height,
		cellSize:       CellSize,
		radius:         InitialRadius,
		radiusVelocity: InitialRadiusVelocity,
	}
	a.strokeStyle = a.createGradient()
	surface.SetLineWidth(LineWidth)
	surface.SetStrokeStyle(a.strokeStyle)
	return a
}

// createGradient builds the diagonal crimson-to-blue gradient, or a solid
// white style when the surface cannot make gradients.
func (a *Animator) createGradient() StrokeStyle {
	g := a.surface.CreateLinearGradient(0, 0, float64(a.width), float64(a.height))
	if g == nil {
		return Solid(colornames.White)
	}
	g.AddColorStop(GradientStartOffset, colornames.Crimson)
	g.AddColorStop(GradientEndOffset, colornames.Blue)
	return g
}

// Advance runs one frame step at timestamp (milliseconds, non-decreasing).
// It redraws only once more than FrameInterval has accumulated since the last
// redraw and reports whether it did.
func (a *Animator) Advance(timestamp float64, cursor Cursor) bool {
	deltaTime := timestamp - a.lastFrameTime
	a.lastFrameTime = timestamp

	if a.accumulatedTime <= FrameInterval {
		a.accumulatedTime += deltaTime
		return false
	}

	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	a.surface.ClearRect(0, 0, float64(a.width), float64(a.height))
	a.stepRadius()

	segments := 0
	EachGridPoint(a.width, a.height, a.cellSize, func(x, y float64) {
		a.drawLine(FieldAngle(x, y, cursor, a.radius), x, y, cursor)
		segments++
	})
	a.accumulatedTime = 0

	a.stats = FrameStats{
		Timestamp: timestamp,
		Segments:  segments,
		Radius:    a.radius,
		Cursor:    cursor,
	}
	if a.debug {
		a.stats.DrawTime = time.Since(t0)
		debugLog(a.stats)
	}
	return true
}

// stepRadius applies the velocity and reverses it once radius leaves
// [-RadiusBound, RadiusBound]. The overshoot stands for the current frame.
func (a *Animator) stepRadius() {
	a.radius += a.radiusVelocity
	if a.radius > RadiusBound || a.radius < -RadiusBound {
		a.radiusVelocity = -a.radiusVelocity
	}
}

func (a *Animator) drawLine(angle, x, y float64, cursor Cursor) {
	end := SegmentEnd(x, y, angle, cursor)
	a.surface.BeginPath()
	a.surface.MoveTo(x, y)
	a.surface.LineTo(end.X, end.Y)
	a.surface.Stroke()
}

// Size returns the drawing area the Animator was built for.
func (a *Animator) Size() (width, height int) {
	return a.width, a.height
}

// CellSize returns the grid spacing in pixels.
func (a *Animator) CellSize() int {
	return a.cellSize
}

// Radius returns the current field radius.
func (a *Animator) Radius() float64 {
	return a.radius
}

// RadiusVelocity returns the signed per-redraw radius increment.
func (a *Animator) RadiusVelocity() float64 {
	return a.radiusVelocity
}

// StrokeStyle returns the style set on the surface at construction.
func (a *Animator) StrokeStyle() StrokeStyle {
	return a.strokeStyle
}

// LastStats returns statistics for the most recent redraw. DrawTime is only
// measured in debug mode.
func (a *Animator) LastStats() FrameStats {
	return a.stats
}

// SetDebugMode enables per-redraw timing and stderr logging.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}
