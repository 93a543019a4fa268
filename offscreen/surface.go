package offscreen

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"github.com/phanxgames/flowfield"
)

// Surface is a flowfield.Surface rasterized on the CPU by gg.
type Surface struct {
	dc    *gg.Context
	im    *image.RGBA
	style flowfield.StrokeStyle
}

var _ flowfield.Surface = (*Surface)(nil)

func newSurface(width, height int) *Surface {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	s := &Surface{dc: gg.NewContextForRGBA(im), im: im}
	s.SetStrokeStyle(flowfield.Solid(color.RGBA{A: 255}))
	return s
}

// ClearRect makes the given rectangle transparent.
func (s *Surface) ClearRect(x, y, width, height float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height))).Intersect(s.im.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.im, r, image.Transparent, image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.dc.ClearPath()
}

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

// LineTo extends the current subpath.
func (s *Surface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

// Stroke strokes the current path, which stays current until BeginPath.
func (s *Surface) Stroke() {
	s.dc.StrokePreserve()
}

// CreateLinearGradient returns a gradient evaluated per pixel by gg.
func (s *Surface) CreateLinearGradient(x0, y0, x1, y1 float64) flowfield.Gradient {
	return flowfield.NewLinearGradient(x0, y0, x1, y1)
}

// SetLineWidth sets the stroke width. Non-positive widths are ignored.
func (s *Surface) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) {
		s.dc.SetLineWidth(width)
	}
}

// SetStrokeStyle sets the style used by subsequent strokes.
func (s *Surface) SetStrokeStyle(style flowfield.StrokeStyle) {
	if style == nil {
		return
	}
	s.style = style
	if solid, ok := style.(flowfield.Solid); ok {
		s.dc.SetStrokeStyle(gg.NewSolidPattern(color.RGBA(solid)))
		return
	}
	s.dc.SetStrokeStyle(stylePattern{style})
}

// StrokeStyle returns the current style.
func (s *Surface) StrokeStyle() flowfield.StrokeStyle {
	return s.style
}

// Image returns the backing image. It aliases the surface's pixels.
func (s *Surface) Image() *image.RGBA {
	return s.im
}

// stylePattern samples a StrokeStyle at pixel centers for gg's rasterizer.
type stylePattern struct {
	style flowfield.StrokeStyle
}

func (p stylePattern) ColorAt(x, y int) color.Color {
	return p.style.ColorAt(float64(x)+0.5, float64(y)+0.5)
}
