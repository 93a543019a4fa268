package flowfield

import (
	"errors"
	"testing"
)

// fakeCanvas hands out a fresh recordSurface on every SetSize, like a
// canvas whose backing store is replaced when resized.
type fakeCanvas struct {
	noContext bool
	surface   *recordSurface
	sizes     [][2]int
}

func (c *fakeCanvas) SetSize(width, height int) {
	c.sizes = append(c.sizes, [2]int{width, height})
	c.surface = &recordSurface{}
}

func (c *fakeCanvas) Context() Surface {
	if c.noContext {
		return nil
	}
	if c.surface == nil {
		c.surface = &recordSurface{}
	}
	return c.surface
}

func TestLoopStartRunsFirstStepImmediately(t *testing.T) {
	var sched StepScheduler
	a := NewAnimator(&recordSurface{}, 10, 10)
	l := NewLoop(a, &sched, &Pointer{})

	l.Start()
	if l.Steps() != 1 {
		t.Errorf("Steps = %d, want 1 after Start", l.Steps())
	}
	if l.Draws() != 0 {
		t.Errorf("Draws = %d, want 0 at timestamp 0", l.Draws())
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want the next step scheduled", sched.Pending())
	}
}

func TestLoopReschedulesItself(t *testing.T) {
	var sched StepScheduler
	s := &recordSurface{}
	l := NewLoop(NewAnimator(s, 10, 10), &sched, &Pointer{})
	l.Start()

	for i := 1; i <= 60; i++ {
		sched.Tick(float64(i) * 20)
		if sched.Pending() != 1 {
			t.Fatalf("tick %d: pending = %d, want 1", i, sched.Pending())
		}
	}
	if l.Steps() != 61 {
		t.Errorf("Steps = %d, want 61", l.Steps())
	}
	// With 20ms between steps every other step redraws.
	if l.Draws() != 30 {
		t.Errorf("Draws = %d, want 30", l.Draws())
	}
	if uint64(len(s.clears)) != l.Draws() {
		t.Errorf("clears = %d, draws = %d", len(s.clears), l.Draws())
	}
}

func TestLoopReadsPointerEachStep(t *testing.T) {
	var sched StepScheduler
	p := &Pointer{}
	a := NewAnimator(&recordSurface{}, 7, 7)
	l := NewLoop(a, &sched, p)
	l.Start()

	p.MoveTo(42, 24)
	sched.Tick(20)
	sched.Tick(40)
	if got := a.LastStats().Cursor; got != (Cursor{42, 24}) {
		t.Errorf("cursor = %v, want (42,24)", got)
	}
}

func TestLoopStop(t *testing.T) {
	var sched StepScheduler
	l := NewLoop(NewAnimator(&recordSurface{}, 10, 10), &sched, &Pointer{})
	l.Start()

	l.Stop()
	l.Stop()
	if l.Running() {
		t.Error("loop should not be running after Stop")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 after Stop", sched.Pending())
	}
	sched.Tick(100)
	if l.Steps() != 1 {
		t.Errorf("Steps = %d, stopped loop should not step", l.Steps())
	}
}

func TestHostStartErrors(t *testing.T) {
	var sched StepScheduler

	h := NewHost(nil, &sched, &Pointer{})
	if err := h.Start(100, 100); !errors.Is(err, ErrNoCanvas) {
		t.Errorf("Start without canvas = %v, want ErrNoCanvas", err)
	}

	c := &fakeCanvas{noContext: true}
	h = NewHost(c, &sched, &Pointer{})
	if err := h.Start(100, 100); !errors.Is(err, ErrNoContext) {
		t.Errorf("Start without context = %v, want ErrNoContext", err)
	}
	if h.Running() || h.Animator() != nil {
		t.Error("failed Start should leave the host idle")
	}
	if len(c.sizes) != 0 {
		t.Error("failed Start should not size the canvas")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", sched.Pending())
	}
}

func TestHostStart(t *testing.T) {
	var sched StepScheduler
	c := &fakeCanvas{}
	h := NewHost(c, &sched, &Pointer{})

	if err := h.Start(800, 600); err != nil {
		t.Fatal(err)
	}
	if len(c.sizes) != 1 || c.sizes[0] != [2]int{800, 600} {
		t.Errorf("canvas sizes = %v, want [[800 600]]", c.sizes)
	}
	if w, h := h.Animator().Size(); w != 800 || h != 600 {
		t.Errorf("animator size = %dx%d", w, h)
	}
	if !h.Running() {
		t.Error("host should be running")
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", sched.Pending())
	}
	// The animator must draw on the surface fetched after resizing.
	if c.surface.gradient == nil {
		t.Error("gradient should be created on the resized surface")
	}
}

func TestHostResizeKeepsSingleLoop(t *testing.T) {
	var sched StepScheduler
	c := &fakeCanvas{}
	h := NewHost(c, &sched, &Pointer{})
	if err := h.Start(800, 600); err != nil {
		t.Fatal(err)
	}

	var loops []*Loop
	for i := 0; i < 10; i++ {
		loops = append(loops, h.Loop())
		h.Resize(640+i, 480+i)
		if sched.Pending() != 1 {
			t.Fatalf("resize %d: pending = %d, want exactly 1", i, sched.Pending())
		}
	}
	for i, l := range loops {
		if l.Running() {
			t.Errorf("replaced loop %d still running", i)
		}
	}

	if w, hh := h.Size(); w != 649 || hh != 489 {
		t.Errorf("Size = %dx%d, want 649x489", w, hh)
	}
	if w, hh := h.Animator().Size(); w != 649 || hh != 489 {
		t.Errorf("animator size = %dx%d, want 649x489", w, hh)
	}

	for i := 1; i <= 30; i++ {
		sched.Tick(float64(i) * 20)
		if sched.Pending() != 1 {
			t.Fatalf("tick %d: pending = %d, want 1", i, sched.Pending())
		}
	}
	for i, l := range loops {
		if l.Steps() != 1 {
			t.Errorf("replaced loop %d stepped %d times, want 1", i, l.Steps())
		}
	}
}

func TestHostResizeResetsAnimator(t *testing.T) {
	var sched StepScheduler
	h := NewHost(&fakeCanvas{}, &sched, &Pointer{})
	if err := h.Start(100, 100); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 20; i++ {
		sched.Tick(float64(i) * 20)
	}
	if h.Animator().Radius() == InitialRadius {
		t.Fatal("radius should have moved")
	}

	h.Resize(200, 100)
	if h.Animator().Radius() != InitialRadius || h.Animator().RadiusVelocity() != InitialRadiusVelocity {
		t.Error("replacement animator should start from initial radius state")
	}
}

func TestHostResizeBeforeStartIsNoop(t *testing.T) {
	var sched StepScheduler
	c := &fakeCanvas{}
	h := NewHost(c, &sched, &Pointer{})

	h.Resize(100, 100)
	if h.Running() || len(c.sizes) != 0 || sched.Pending() != 0 {
		t.Error("Resize before Start should do nothing")
	}
}

func TestHostStop(t *testing.T) {
	var sched StepScheduler
	c := &fakeCanvas{}
	h := NewHost(c, &sched, &Pointer{})
	if err := h.Start(100, 100); err != nil {
		t.Fatal(err)
	}

	h.Stop()
	h.Stop()
	if h.Running() {
		t.Error("host should not be running after Stop")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", sched.Pending())
	}

	h.Resize(50, 50)
	if len(c.sizes) != 1 {
		t.Error("Resize after Stop should not restart the host")
	}
}

func TestHostSetDebugModeAppliesToReplacements(t *testing.T) {
	var sched StepScheduler
	h := NewHost(&fakeCanvas{}, &sched, &Pointer{})
	h.SetDebugMode(true)
	if err := h.Start(14, 14); err != nil {
		t.Fatal(err)
	}
	h.Resize(21, 21)

	sched.Tick(20)
	sched.Tick(40)
	if h.Animator().LastStats().Segments != 9 {
		t.Fatalf("segments = %d, want 9", h.Animator().LastStats().Segments)
	}
	if h.Animator().LastStats().DrawTime <= 0 {
		t.Error("debug mode should carry over to the replacement animator")
	}
}
