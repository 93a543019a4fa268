package ebitenhost

import (
	"time"

	"github.com/phanxgames/flowfield"
)

// FrameScheduler runs requested frame callbacks once per ebiten Draw with a
// millisecond timestamp measured from the scheduler's creation, the way
// requestAnimationFrame stamps callbacks with time since page load.
type FrameScheduler struct {
	flowfield.StepScheduler
	start time.Time
	now   func() time.Time
}

// NewFrameScheduler returns a scheduler whose clock starts now.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{start: time.Now(), now: time.Now}
}

// Timestamp returns milliseconds since the scheduler was created.
func (s *FrameScheduler) Timestamp() float64 {
	return float64(s.now().Sub(s.start)) / float64(time.Millisecond)
}

// RunFrame runs callbacks queued before this call with the current timestamp.
func (s *FrameScheduler) RunFrame() int {
	return s.Tick(s.Timestamp())
}
