package offscreen

import (
	"image"

	"github.com/phanxgames/flowfield"
)

// Canvas is a resizable in-memory raster. SetSize replaces the backing image,
// dropping its content.
type Canvas struct {
	surface *Surface
}

var _ flowfield.Canvas = (*Canvas)(nil)

// NewCanvas allocates a width x height canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

// SetSize reallocates the backing image. Negative sizes are treated as 0.
func (c *Canvas) SetSize(width, height int) {
	c.surface = newSurface(max(width, 0), max(height, 0))
}

// Context returns the canvas surface.
func (c *Canvas) Context() flowfield.Surface {
	if c.surface == nil {
		return nil
	}
	return c.surface
}

// Image returns the live backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.surface.Image()
}

// Snapshot returns a copy of the current pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	src := c.surface.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
