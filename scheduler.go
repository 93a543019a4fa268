package flowfield

// FrameFunc is a scheduled frame callback. timestamp is in milliseconds.
type FrameFunc func(timestamp float64)

// FrameID identifies a scheduled callback. The zero FrameID is never issued.
type FrameID uint64

// Scheduler runs callbacks before the next visual refresh.
type Scheduler interface {
	// RequestFrame schedules fn for the next frame and returns its id.
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame removes a scheduled callback. Unknown or already-run ids
	// are ignored.
	CancelFrame(id FrameID)
}

type scheduledFrame struct {
	id FrameID
	fn FrameFunc
}

// StepScheduler is a deterministic Scheduler driven by explicit Tick calls.
// Callbacks requested while a tick is running are deferred to the next tick,
// matching requestAnimationFrame. The zero value is ready to use.
type StepScheduler struct {
	nextID  FrameID
	pending []scheduledFrame
	running []scheduledFrame
}

var _ Scheduler = (*StepScheduler)(nil)

// RequestFrame queues fn for the next Tick.
func (s *StepScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.nextID++
	s.pending = append(s.pending, scheduledFrame{id: s.nextID, fn: fn})
	return s.nextID
}

// CancelFrame removes id from the queue, including from a tick in progress.
func (s *StepScheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i, f := range s.pending {
		if f.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for i, f := range s.running {
		if f.id == id {
			s.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback queued before the call, in request order, passing
// timestamp. It returns the number of callbacks run.
func (s *StepScheduler) Tick(timestamp float64) int {
	s.running, s.pending = s.pending, s.running[:0]
	ran := 0
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		fn(timestamp)
		ran++
	}
	s.running = s.running[:0]
	return ran
}

// Pending returns the number of callbacks waiting for the next Tick.
func (s *StepScheduler) Pending() int {
	return len(s.pending)
}
