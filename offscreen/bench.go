package offscreen

import (
	"context"
	"time"
)

// BenchResult holds per-redraw timings from Bench.
type BenchResult struct {
	Steps     int
	DrawTimes []time.Duration // wall time of each step that redrew
	Segments  int             // segments per redraw
	Total     time.Duration
}

// Mean returns the average redraw time.
func (r BenchResult) Mean() time.Duration {
	if len(r.DrawTimes) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.DrawTimes {
		sum += d
	}
	return sum / time.Duration(len(r.DrawTimes))
}

// Max returns the slowest redraw time.
func (r BenchResult) Max() time.Duration {
	var m time.Duration
	for _, d := range r.DrawTimes {
		m = max(m, d)
	}
	return m
}

// Milliseconds returns DrawTimes as float64 milliseconds, for plotting.
func (r BenchResult) Milliseconds() []float64 {
	out := make([]float64, len(r.DrawTimes))
	for i, d := range r.DrawTimes {
		out[i] = float64(d) / float64(time.Millisecond)
	}
	return out
}

// Bench steps the session frames times, timing every step that redrew.
func Bench(ctx context.Context, s *Session, frames int) (BenchResult, error) {
	res := BenchResult{DrawTimes: make([]time.Duration, 0, frames)}
	start := time.Now()
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t0 := time.Now()
		drew := s.Step()
		res.Steps++
		if drew {
			res.DrawTimes = append(res.DrawTimes, time.Since(t0))
			res.Segments = s.Host().Animator().LastStats().Segments
		}
	}
	res.Total = time.Since(start)
	return res, nil
}
