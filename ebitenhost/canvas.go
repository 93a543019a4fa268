package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/flowfield"
)

// Canvas is a resizable offscreen ebiten image with a drawing Surface. The
// image is reallocated on every SetSize, as a browser canvas drops its
// content when its dimensions change.
type Canvas struct {
	img     *ebiten.Image
	surface *Surface
}

var _ flowfield.Canvas = (*Canvas)(nil)

// NewCanvas allocates a width x height canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

// SetSize reallocates the backing image. Sizes below 1 are raised to 1,
// ebiten's minimum image size.
func (c *Canvas) SetSize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			c.img.Clear()
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
	c.surface = newSurface(c.img)
}

// Context returns the canvas surface.
func (c *Canvas) Context() flowfield.Surface {
	if c.surface == nil {
		return nil
	}
	return c.surface
}

// Image flushes pending strokes and returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	if c.surface != nil {
		c.surface.Flush()
	}
	return c.img
}
