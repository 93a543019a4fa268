// Package offscreen renders a flow field without a window.
//
// A [Session] drives a [flowfield.Host] from a [flowfield.StepScheduler]
// ticked on a simulated clock, drawing into an in-memory raster through
// [gg]. It backs frame exports ([ExportPNGs], [ExportGIF]), scripted runs
// ([Session.RunScript]) and [Bench].
//
// [gg]: https://github.com/fogleman/gg
package offscreen
