package flowfield

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScreenshotDir is where hosts write screenshots unless configured
// otherwise.
const DefaultScreenshotDir = "screenshots"

// ScreenshotStamp formats t the way screenshot file names expect.
func ScreenshotStamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// ScreenshotPath returns dir/<stamp>_<label>.png with label sanitized.
func ScreenshotPath(dir, label, stamp string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
}

// SaveScreenshot writes img under dir, creating dir if needed, and returns
// the file path.
func SaveScreenshot(dir, label string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	path := ScreenshotPath(dir, label, ScreenshotStamp(time.Now()))
	if err := WritePNG(path, img); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// WritePNG encodes an image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// LogScreenshotError reports a failed screenshot on stderr. Screenshots never
// stop the animation.
func LogScreenshotError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[flowfield] %v\n", err)
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
