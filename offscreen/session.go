package offscreen

import (
	"context"
	"fmt"
	"image"

	"github.com/phanxgames/flowfield"
)

// Config controls a headless Session.
type Config struct {
	Width, Height int
	// StepMs is the simulated time between frames in milliseconds.
	// Zero means flowfield.FrameInterval.
	StepMs        float64
	Cursor        flowfield.Cursor
	Debug         bool
	ScreenshotDir string
}

// Session runs a flow field without a window: a StepScheduler ticked on a
// simulated clock drives the animator over a gg canvas.
type Session struct {
	cfg     Config
	canvas  *Canvas
	sched   *flowfield.StepScheduler
	pointer *flowfield.Pointer
	host    *flowfield.Host

	clock float64
	frame uint64

	screenshotQueue []string
	screenshots     []string
}

// NewSession builds a session and starts its animation loop. The loop's first
// step runs at timestamp 0 during this call.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("offscreen: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.StepMs <= 0 {
		cfg.StepMs = flowfield.FrameInterval
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = flowfield.DefaultScreenshotDir
	}
	s := &Session{
		cfg:     cfg,
		canvas:  NewCanvas(cfg.Width, cfg.Height),
		sched:   &flowfield.StepScheduler{},
		pointer: &flowfield.Pointer{},
	}
	s.pointer.MoveTo(cfg.Cursor.X, cfg.Cursor.Y)
	s.host = flowfield.NewHost(s.canvas, s.sched, s.pointer)
	s.host.SetDebugMode(cfg.Debug)
	if err := s.host.Start(cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("offscreen: start: %w", err)
	}
	return s, nil
}

// Step advances the simulated clock by StepMs, applies one queued synthetic
// pointer position and runs the scheduled frame. It reports whether the
// animator redrew.
func (s *Session) Step() bool {
	s.clock += s.cfg.StepMs
	s.frame++
	s.pointer.Poll()

	loop := s.host.Loop()
	before := loop.Draws()
	s.sched.Tick(s.clock)
	drew := loop.Draws() > before

	s.flushScreenshots()
	return drew
}

// Run steps frames times, calling fn after every step that redrew. It stops
// early when ctx is done or fn returns an error.
func (s *Session) Run(ctx context.Context, frames int, fn func(*Session) error) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Step() && fn != nil {
			if err := fn(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// RunScript plays runner until it is done or maxFrames have run (0 means no
// limit). Each frame steps the runner before the session, so screenshots
// queued by the last script step are still written. fn, if non-nil, is called
// after every redraw.
func (s *Session) RunScript(ctx context.Context, runner *flowfield.TestRunner, maxFrames int, fn func(*Session) error) error {
	for i := 0; maxFrames <= 0 || i < maxFrames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		runner.Step(s)
		if s.Step() && fn != nil {
			if err := fn(s); err != nil {
				return err
			}
		}
		if runner.Done() {
			return nil
		}
	}
	if !runner.Done() {
		return fmt.Errorf("offscreen: script not finished after %d frames", maxFrames)
	}
	return nil
}

// Pointer returns the session cursor.
func (s *Session) Pointer() *flowfield.Pointer {
	return s.pointer
}

// Screenshot queues a labeled PNG of the canvas, written after the current
// frame is drawn.
func (s *Session) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

func (s *Session) flushScreenshots() {
	if len(s.screenshotQueue) == 0 {
		return
	}
	for _, label := range s.screenshotQueue {
		path, err := flowfield.SaveScreenshot(s.cfg.ScreenshotDir, label, s.canvas.Image())
		if err != nil {
			flowfield.LogScreenshotError(err)
			continue
		}
		s.screenshots = append(s.screenshots, path)
	}
	s.screenshotQueue = s.screenshotQueue[:0]
}

// Screenshots returns the paths written so far.
func (s *Session) Screenshots() []string {
	return s.screenshots
}

// Resize rebuilds the animator for a new surface size.
func (s *Session) Resize(width, height int) {
	s.host.Resize(width, height)
}

// Image returns the live canvas pixels.
func (s *Session) Image() *image.RGBA {
	return s.canvas.Image()
}

// Snapshot returns a copy of the canvas pixels.
func (s *Session) Snapshot() *image.RGBA {
	return s.canvas.Snapshot()
}

// Host returns the lifecycle host.
func (s *Session) Host() *flowfield.Host {
	return s.host
}

// Scheduler returns the session's scheduler.
func (s *Session) Scheduler() *flowfield.StepScheduler {
	return s.sched
}

// Clock returns the simulated time in milliseconds.
func (s *Session) Clock() float64 {
	return s.clock
}

// Frame returns the number of steps taken.
func (s *Session) Frame() uint64 {
	return s.frame
}
