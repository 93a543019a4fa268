package flowfield

import (
	"fmt"
	"os"
	"time"
)

// FrameStats describes one redraw.
type FrameStats struct {
	Timestamp float64       // frame timestamp in milliseconds
	Segments  int           // line segments stroked
	Radius    float64       // radius after this frame's step
	Cursor    Cursor        // cursor the field was evaluated against
	DrawTime  time.Duration // wall time spent drawing (debug mode only)
}

// debugLog prints per-redraw stats to stderr.
func debugLog(stats FrameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[flowfield] t: %.1fms | draw: %v | segments: %d | radius: %.3f | cursor: (%.0f, %.0f)\n",
		stats.Timestamp, stats.DrawTime, stats.Segments, stats.Radius, stats.Cursor.X, stats.Cursor.Y)
}

// debugLogLifecycle reports host lifecycle transitions in debug mode.
func debugLogLifecycle(event string, width, height int) {
	_, _ = fmt.Fprintf(os.Stderr, "[flowfield] %s: %dx%d\n", event, width, height)
}
