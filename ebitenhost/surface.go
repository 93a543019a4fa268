package ebitenhost

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/flowfield"
)

// Surface is a flowfield.Surface backed by an offscreen ebiten image. Gradient
// strokes are coalesced into vertex-colored quads and submitted with a single
// DrawTriangles32 call per Flush; solid strokes go through vector.StrokeLine.
//
// Content persists between frames, so frames the animator skips keep showing
// the last redraw.
type Surface struct {
	target    *ebiten.Image
	lineWidth float64
	style     flowfield.StrokeStyle
	solid     color.Color // non-nil when style is flowfield.Solid

	path    []flowfield.Vec2
	subpath []int // start index of each subpath in path

	batchVerts []ebiten.Vertex
	batchInds  []uint32
}

var _ flowfield.Surface = (*Surface)(nil)

// maxBatchVerts keeps one DrawTriangles32 submission within ebiten's vertex
// limit per call.
const maxBatchVerts = 65532

func newSurface(target *ebiten.Image) *Surface {
	return &Surface{target: target, lineWidth: 1, style: flowfield.Solid(color.RGBA{A: 255})}
}

// ClearRect makes the given rectangle transparent.
func (s *Surface) ClearRect(x, y, width, height float64) {
	s.Flush()
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)))
	bounds := s.target.Bounds()
	r = r.Intersect(bounds)
	if r.Empty() {
		return
	}
	if r == bounds {
		s.target.Clear()
		return
	}
	s.target.SubImage(r).(*ebiten.Image).Clear()
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.path = s.path[:0]
	s.subpath = s.subpath[:0]
}

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	s.subpath = append(s.subpath, len(s.path))
	s.path = append(s.path, flowfield.Vec2{X: x, Y: y})
}

// LineTo extends the current subpath. Without a subpath it behaves as MoveTo.
func (s *Surface) LineTo(x, y float64) {
	if len(s.subpath) == 0 {
		s.MoveTo(x, y)
		return
	}
	s.path = append(s.path, flowfield.Vec2{X: x, Y: y})
}

// Stroke draws every segment of the current path with the current style.
func (s *Surface) Stroke() {
	for i, start := range s.subpath {
		end := len(s.path)
		if i+1 < len(s.subpath) {
			end = s.subpath[i+1]
		}
		for j := start + 1; j < end; j++ {
			s.strokeSegment(s.path[j-1], s.path[j])
		}
	}
}

func (s *Surface) strokeSegment(a, b flowfield.Vec2) {
	if s.solid != nil {
		s.Flush()
		vector.StrokeLine(s.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(s.lineWidth), s.solid, true)
		return
	}
	nx, ny, ok := perpendicular(a, b)
	if !ok {
		return
	}
	if len(s.batchVerts)+4 > maxBatchVerts {
		s.Flush()
	}
	hw := s.lineWidth / 2
	corners := [4]flowfield.Vec2{
		{X: a.X + nx*hw, Y: a.Y + ny*hw},
		{X: b.X + nx*hw, Y: b.Y + ny*hw},
		{X: a.X - nx*hw, Y: a.Y - ny*hw},
		{X: b.X - nx*hw, Y: b.Y - ny*hw},
	}
	base := uint32(len(s.batchVerts))
	for _, p := range corners {
		cr, cg, cb, ca := premultiplied(s.style.ColorAt(p.X, p.Y))
		s.batchVerts = append(s.batchVerts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	// Two triangles: A+ B+ A-, B+ B- A-
	s.batchInds = append(s.batchInds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// Flush submits coalesced strokes. Hosts call it before presenting the
// target.
func (s *Surface) Flush() {
	if len(s.batchVerts) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true
	s.target.DrawTriangles32(s.batchVerts, s.batchInds, ensureWhitePixel(), &triOp)
	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
}

// CreateLinearGradient returns a CPU-evaluated gradient; stroke vertices
// sample it.
func (s *Surface) CreateLinearGradient(x0, y0, x1, y1 float64) flowfield.Gradient {
	return flowfield.NewLinearGradient(x0, y0, x1, y1)
}

// SetLineWidth sets the stroke width. Non-positive widths are ignored.
func (s *Surface) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) {
		s.lineWidth = width
	}
}

// SetStrokeStyle sets the style used by subsequent strokes.
func (s *Surface) SetStrokeStyle(style flowfield.StrokeStyle) {
	if style == nil {
		return
	}
	s.Flush()
	s.style = style
	s.solid = nil
	if solid, ok := style.(flowfield.Solid); ok {
		s.solid = color.RGBA(solid)
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to
// b. Zero-length segments report ok == false and draw nothing.
func perpendicular(a, b flowfield.Vec2) (nx, ny float64, ok bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, 0, false
	}
	return -dy / ln, dx / ln, true
}

// premultiplied converts c to premultiplied float components in [0, 1].
func premultiplied(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// --- White pixel singleton (no sync.Once; ebiten drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source for untextured stroke quads.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
