package flowfield

// Loop drives an Animator from a Scheduler. Each step advances the animator
// with the pointer's current cursor and then requests the next frame with
// itself as the continuation, so the loop runs until Stop.
type Loop struct {
	animator  *Animator
	scheduler Scheduler
	pointer   PointerSource

	frame   FrameID
	stopped bool
	steps   uint64
	draws   uint64
}

// NewLoop binds animator, scheduler and pointer. Nothing runs until Start.
func NewLoop(animator *Animator, scheduler Scheduler, pointer PointerSource) *Loop {
	return &Loop{animator: animator, scheduler: scheduler, pointer: pointer}
}

// Start runs the first step immediately with timestamp 0.
func (l *Loop) Start() {
	l.step(0)
}

// step is the scheduled continuation.
func (l *Loop) step(timestamp float64) {
	if l.stopped {
		return
	}
	l.frame = 0
	l.steps++
	if l.animator.Advance(timestamp, l.pointer.Cursor()) {
		l.draws++
	}
	l.frame = l.scheduler.RequestFrame(l.step)
}

// Stop cancels the outstanding frame. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopped = true
	if l.frame != 0 {
		l.scheduler.CancelFrame(l.frame)
		l.frame = 0
	}
}

// Running reports whether the loop has not been stopped.
func (l *Loop) Running() bool {
	return !l.stopped
}

// Animator returns the animator driven by the loop.
func (l *Loop) Animator() *Animator {
	return l.animator
}

// Steps returns how many frame steps ran.
func (l *Loop) Steps() uint64 { return l.steps }

// Draws returns how many steps redrew the surface.
func (l *Loop) Draws() uint64 { return l.draws }
