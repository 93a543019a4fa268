package flowfield

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorStop is a gradient stop. Offset is in [0, 1] along the gradient vector.
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient is a CPU-evaluated linear gradient with canvas semantics:
// positions before the first stop take its color, positions past the last
// stop take the last color, and colors in between are interpolated linearly
// in sRGB.
type LinearGradient struct {
	x0, y0, x1, y1 float64
	stops          []ColorStop
}

var _ Gradient = (*LinearGradient)(nil)

// NewLinearGradient creates a gradient along the vector (x0, y0) -> (x1, y1)
// with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{x0: x0, y0: y0, x1: x1, y1: y1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset. Offsets
// outside [0, 1] are clamped. Stops sharing an offset keep insertion order.
func (g *LinearGradient) AddColorStop(offset float64, c color.Color) {
	offset = clamp(offset, 0, 1)
	stop := ColorStop{Offset: offset, Color: color.NRGBAModel.Convert(c).(color.NRGBA)}
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = stop
}

// Stops returns a copy of the gradient's stops in offset order.
func (g *LinearGradient) Stops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Vector returns the gradient's start and end points.
func (g *LinearGradient) Vector() (start, end Vec2) {
	return Vec2{g.x0, g.y0}, Vec2{g.x1, g.y1}
}

// Offset projects (x, y) onto the gradient vector. The result is not clamped.
// A zero-length gradient reports 0 everywhere.
func (g *LinearGradient) Offset(x, y float64) float64 {
	dx := g.x1 - g.x0
	dy := g.y1 - g.y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((x-g.x0)*dx + (y-g.y0)*dy) / lenSq
}

// ColorAt returns the gradient color at surface position (x, y). A gradient
// without stops, or with a zero-length vector, paints transparent black.
func (g *LinearGradient) ColorAt(x, y float64) color.Color {
	if g.x0 == g.x1 && g.y0 == g.y1 {
		return color.NRGBA{}
	}
	return g.ColorAtOffset(g.Offset(x, y))
}

// ColorAtOffset returns the interpolated color at offset t.
func (g *LinearGradient) ColorAtOffset(t float64) color.NRGBA {
	n := len(g.stops)
	if n == 0 {
		return color.NRGBA{}
	}
	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	if t >= g.stops[n-1].Offset {
		return g.stops[n-1].Color
	}
	i := sort.Search(n, func(i int) bool { return g.stops[i].Offset > t }) - 1
	a, b := g.stops[i], g.stops[i+1]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return blendNRGBA(a.Color, b.Color, (t-a.Offset)/span)
}

// blendNRGBA interpolates two straight-alpha colors in sRGB space.
func blendNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, gg, bb := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: gg, B: bb, A: uint8(alpha + 0.5)}
}
