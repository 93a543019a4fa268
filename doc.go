// Package flowfield renders an animated flow field: a grid of short line
// segments whose angles follow a periodic function of the cursor position and
// a slowly oscillating radius.
//
// The package holds the deterministic core. Drawing, frame scheduling and
// pointer input are collaborators supplied by a host:
//
//   - [Surface]: a 2D drawing context (clear, path stroke, linear gradients)
//   - [Scheduler]: requests and cancels per-frame callbacks
//   - [PointerSource]: the live cursor position
//
// Two hosts ship with the module: [github.com/phanxgames/flowfield/ebitenhost]
// opens an [Ebitengine] window, and [github.com/phanxgames/flowfield/offscreen]
// renders headlessly with [gg] for exports, scripted sessions and benchmarks.
//
// # Quick start
//
//	pointer := &flowfield.Pointer{}
//	sched := &flowfield.StepScheduler{}
//	host := flowfield.NewHost(canvas, sched, pointer)
//	if err := host.Start(800, 600); err != nil {
//		return err
//	}
//	for ts := 16.0; ; ts += 16 {
//		sched.Tick(ts)
//	}
//
// # Frame step
//
// [Animator.Advance] accumulates elapsed time and redraws only after more than
// [FrameInterval] milliseconds have built up. A redraw clears the surface,
// steps the radius (reversing direction past ±[RadiusBound]) and strokes one
// segment per grid point, every [CellSize] pixels. The [Loop] reschedules the
// animator after every step whether or not it redrew; the [Host] cancels that
// continuation before building a replacement on resize, so exactly one loop
// is ever live.
//
// # Scripted sessions
//
// [LoadTestScript] parses a JSON list of steps (move, sweep, wait, resize,
// screenshot) that a [TestRunner] plays back one frame at a time through
// synthetic pointer input.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
package flowfield
