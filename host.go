package flowfield

import "errors"

// Setup errors. Both leave the host idle with nothing drawn.
var (
	ErrNoCanvas  = errors.New("flowfield: no canvas")
	ErrNoContext = errors.New("flowfield: canvas has no drawing context")
)

// Host owns the lifecycle of the single active animation loop: it starts one
// on Start and replaces it on every Resize, cancelling the previous loop's
// pending frame first so two loops never draw at once.
type Host struct {
	canvas    Canvas
	scheduler Scheduler
	pointer   PointerSource

	loop          *Loop
	width, height int
	debug         bool
}

// NewHost returns a host for canvas, driven by scheduler and reading cursor
// positions from pointer.
func NewHost(canvas Canvas, scheduler Scheduler, pointer PointerSource) *Host {
	return &Host{canvas: canvas, scheduler: scheduler, pointer: pointer}
}

// Start sizes the canvas, builds an Animator and starts its loop. It returns
// ErrNoCanvas or ErrNoContext, without starting anything, when there is no
// surface to draw on. Starting an already running host restarts it.
func (h *Host) Start(width, height int) error {
	if h.canvas == nil {
		return ErrNoCanvas
	}
	if h.canvas.Context() == nil {
		return ErrNoContext
	}
	h.stopLoop()
	h.canvas.SetSize(width, height)
	// Resizing may replace the canvas backing store; fetch the context after.
	surface := h.canvas.Context()
	if surface == nil {
		return ErrNoContext
	}

	h.width, h.height = width, height
	anim := NewAnimator(surface, width, height)
	anim.SetDebugMode(h.debug)
	h.loop = NewLoop(anim, h.scheduler, h.pointer)
	if h.debug {
		debugLogLifecycle("start", width, height)
	}
	h.loop.Start()
	return nil
}

// Resize replaces the running animator with a fresh one for the new size.
// It is a no-op if no loop is running.
func (h *Host) Resize(width, height int) {
	if h.loop == nil || !h.loop.Running() {
		return
	}
	if h.debug {
		debugLogLifecycle("resize", width, height)
	}
	// Start only fails when the context vanished; the host is then idle.
	_ = h.Start(width, height)
}

// Stop cancels the active loop. It is safe to call more than once.
func (h *Host) Stop() {
	h.stopLoop()
}

func (h *Host) stopLoop() {
	if h.loop != nil {
		h.loop.Stop()
	}
}

// Running reports whether a loop is active.
func (h *Host) Running() bool {
	return h.loop != nil && h.loop.Running()
}

// Animator returns the live animator, or nil before Start.
func (h *Host) Animator() *Animator {
	if h.loop == nil {
		return nil
	}
	return h.loop.Animator()
}

// Loop returns the active loop, or nil before Start.
func (h *Host) Loop() *Loop {
	return h.loop
}

// Size returns the dimensions of the current animator.
func (h *Host) Size() (width, height int) {
	return h.width, h.height
}

// SetDebugMode enables per-frame stats and lifecycle logging on stderr. It
// applies to the current animator and every replacement.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
	if a := h.Animator(); a != nil {
		a.SetDebugMode(enabled)
	}
}
