package flowfield

import "testing"

func TestStepSchedulerRunsInRequestOrder(t *testing.T) {
	var s StepScheduler
	var order []int
	var stamps []float64

	for i := 1; i <= 3; i++ {
		s.RequestFrame(func(ts float64) {
			order = append(order, i)
			stamps = append(stamps, ts)
		})
	}
	if s.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", s.Pending())
	}

	if ran := s.Tick(16.5); ran != 3 {
		t.Errorf("Tick ran %d, want 3", ran)
	}
	for i, v := range order {
		if v != i+1 {
			t.Errorf("order = %v, want [1 2 3]", order)
			break
		}
	}
	for _, ts := range stamps {
		if ts != 16.5 {
			t.Errorf("timestamp = %v, want 16.5", ts)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Pending after tick = %d, want 0", s.Pending())
	}
}

func TestStepSchedulerIDs(t *testing.T) {
	var s StepScheduler
	a := s.RequestFrame(func(float64) {})
	b := s.RequestFrame(func(float64) {})
	if a == 0 || b == 0 {
		t.Error("zero FrameID issued")
	}
	if a == b {
		t.Error("FrameIDs should be unique")
	}
}

func TestStepSchedulerDefersRequestsMadeDuringTick(t *testing.T) {
	var s StepScheduler
	calls := 0
	var fn FrameFunc
	fn = func(float64) {
		calls++
		s.RequestFrame(fn)
	}
	s.RequestFrame(fn)

	for i := 1; i <= 5; i++ {
		if ran := s.Tick(float64(i)); ran != 1 {
			t.Fatalf("tick %d ran %d callbacks, want 1", i, ran)
		}
		if calls != i {
			t.Fatalf("tick %d: calls = %d, want %d", i, calls, i)
		}
		if s.Pending() != 1 {
			t.Fatalf("tick %d: pending = %d, want 1", i, s.Pending())
		}
	}
}

func TestStepSchedulerCancel(t *testing.T) {
	var s StepScheduler
	ran := map[string]bool{}
	a := s.RequestFrame(func(float64) { ran["a"] = true })
	s.RequestFrame(func(float64) { ran["b"] = true })

	s.CancelFrame(a)
	s.CancelFrame(a)   // already cancelled
	s.CancelFrame(0)   // never issued
	s.CancelFrame(999) // unknown

	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}
	s.Tick(0)
	if ran["a"] || !ran["b"] {
		t.Errorf("ran = %v, want only b", ran)
	}
}

func TestStepSchedulerCancelDuringTick(t *testing.T) {
	var s StepScheduler
	var second FrameID
	secondRan := false

	s.RequestFrame(func(float64) { s.CancelFrame(second) })
	second = s.RequestFrame(func(float64) { secondRan = true })

	if ran := s.Tick(0); ran != 1 {
		t.Errorf("Tick ran %d, want 1", ran)
	}
	if secondRan {
		t.Error("callback cancelled earlier in the same tick should not run")
	}
}

func TestStepSchedulerEmptyTick(t *testing.T) {
	var s StepScheduler
	if ran := s.Tick(0); ran != 0 {
		t.Errorf("Tick on empty scheduler ran %d", ran)
	}
}
