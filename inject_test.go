package flowfield

import (
	"math"
	"testing"
)

func TestPointerMoveTo(t *testing.T) {
	var p Pointer
	if p.Cursor() != (Cursor{}) {
		t.Errorf("zero Pointer cursor = %v, want (0,0)", p.Cursor())
	}
	p.MoveTo(12, 34)
	if p.Cursor() != (Cursor{12, 34}) {
		t.Errorf("cursor = %v, want (12,34)", p.Cursor())
	}
}

func TestInjectMove(t *testing.T) {
	var p Pointer
	p.InjectMove(50, 60)
	if p.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", p.Pending())
	}
	if p.Cursor() != (Cursor{}) {
		t.Error("injected move should not apply before Poll")
	}

	if !p.Poll() {
		t.Error("Poll should consume the queued move")
	}
	if p.Cursor() != (Cursor{50, 60}) {
		t.Errorf("cursor = %v, want (50,60)", p.Cursor())
	}
	if p.Poll() {
		t.Error("Poll on an empty queue should report false")
	}
}

func TestInjectQueueOrder(t *testing.T) {
	var p Pointer
	p.InjectMove(10, 20)
	p.InjectMove(30, 40)
	p.InjectMove(50, 60)

	want := []Cursor{{10, 20}, {30, 40}, {50, 60}}
	for i, c := range want {
		p.Poll()
		if p.Cursor() != c {
			t.Errorf("poll %d: cursor = %v, want %v", i, p.Cursor(), c)
		}
	}
	if p.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", p.Pending())
	}
}

func TestInjectSweep(t *testing.T) {
	var p Pointer
	// frame 0: start (10,10)
	// frames 1-3: linear steps toward the end
	// frame 4: end (210,410)
	p.InjectSweep(10, 10, 210, 410, 5, "linear")
	if p.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", p.Pending())
	}

	var got []Cursor
	for p.Poll() {
		got = append(got, p.Cursor())
	}
	if got[0] != (Cursor{10, 10}) {
		t.Errorf("first = %v, want start point", got[0])
	}
	if got[4] != (Cursor{210, 410}) {
		t.Errorf("last = %v, want end point", got[4])
	}
	for i := 1; i < 4; i++ {
		wantX := 10 + 200*float64(i)/4
		wantY := 10 + 400*float64(i)/4
		if math.Abs(got[i].X-wantX) > 0.01 || math.Abs(got[i].Y-wantY) > 0.01 {
			t.Errorf("step %d = %v, want about (%v,%v)", i, got[i], wantX, wantY)
		}
	}
}

func TestInjectSweepMinFrames(t *testing.T) {
	var p Pointer
	p.InjectSweep(0, 0, 100, 100, 1, "") // should clamp to 2
	if p.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2 (clamped)", p.Pending())
	}
	p.Poll()
	p.Poll()
	if p.Cursor() != (Cursor{100, 100}) {
		t.Errorf("cursor = %v, want end point", p.Cursor())
	}
}

func TestInjectSweepEased(t *testing.T) {
	var linear, eased Pointer
	linear.InjectSweep(0, 0, 100, 0, 11, "linear")
	eased.InjectSweep(0, 0, 100, 0, 11, "inQuad")

	for i := 0; i < 3; i++ {
		linear.Poll()
		eased.Poll()
	}
	if eased.Cursor().X >= linear.Cursor().X {
		t.Errorf("inQuad at step 2 = %v, want behind linear %v", eased.Cursor().X, linear.Cursor().X)
	}
}

func TestEaseFuncFallback(t *testing.T) {
	for _, name := range []string{"", "nope", "Linear"} {
		fn := EaseFunc(name)
		if got := fn(5, 0, 10, 10); math.Abs(float64(got)-5) > 1e-6 {
			t.Errorf("EaseFunc(%q) at half = %v, want linear 5", name, got)
		}
	}
	for name := range easeFuncs {
		if EaseFunc(name) == nil {
			t.Errorf("EaseFunc(%q) = nil", name)
		}
	}
}
