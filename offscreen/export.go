package offscreen

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/phanxgames/flowfield"
)

// ExportPNGs steps the session frames times and writes every redrawn frame to
// dir as frame_00001.png, frame_00002.png, ... It returns the number of files
// written.
func ExportPNGs(ctx context.Context, s *Session, frames int, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	written := 0
	err := s.Run(ctx, frames, func(s *Session) error {
		written++
		path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", written))
		return flowfield.WritePNG(path, s.Image())
	})
	return written, err
}

// GIFRecorder collects redrawn frames and encodes them as an animated GIF.
type GIFRecorder struct {
	// Delay between frames in 100ths of a second.
	Delay  int
	frames []*image.Paletted
}

// Capture quantizes the session's current frame and appends it.
func (r *GIFRecorder) Capture(s *Session) error {
	r.frames = append(r.frames, quantize(s.Image()))
	return nil
}

// Len returns the number of captured frames.
func (r *GIFRecorder) Len() int {
	return len(r.frames)
}

// WriteFile encodes the captured frames to path, looping forever.
func (r *GIFRecorder) WriteFile(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("export: no frames captured")
	}
	delay := r.Delay
	if delay <= 0 {
		delay = 2
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// ExportGIF steps the session frames times and writes the redrawn frames to
// path as an animated GIF. It returns the number of frames encoded.
func ExportGIF(ctx context.Context, s *Session, frames, delay int, path string) (int, error) {
	rec := &GIFRecorder{Delay: delay}
	if err := s.Run(ctx, frames, rec.Capture); err != nil {
		return rec.Len(), err
	}
	return rec.Len(), rec.WriteFile(path)
}

// quantize maps src onto the Plan 9 palette with Floyd-Steinberg dithering.
// Transparent pixels are composited over black first.
func quantize(src *image.RGBA) *image.Paletted {
	b := src.Bounds()
	opaque := image.NewRGBA(b)
	draw.Draw(opaque, b, image.Black, image.Point{}, draw.Src)
	draw.Draw(opaque, b, src, b.Min, draw.Over)

	dst := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, b, opaque, b.Min)
	return dst
}
