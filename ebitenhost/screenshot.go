package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/flowfield"
)

// Screenshot queues a labeled screenshot of the canvas, captured at the end of
// the current frame's Draw call. Safe to call from Update or Draw.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots captures the canvas for every queued label and writes each
// as a PNG file. Called at the end of Draw.
func (g *Game) flushScreenshots(src *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	img := straightAlpha(src)
	for _, label := range g.screenshotQueue {
		if _, err := flowfield.SaveScreenshot(g.cfg.ScreenshotDir, label, img); err != nil {
			flowfield.LogScreenshotError(err)
		}
	}
	g.screenshotQueue = g.screenshotQueue[:0]
}

// straightAlpha reads src and converts its premultiplied RGBA pixels to
// straight-alpha NRGBA.
func straightAlpha(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
