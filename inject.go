package flowfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// InjectMove queues a synthetic pointer position. It is applied on the next
// Poll.
func (p *Pointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, Cursor{X: x, Y: y})
}

// InjectSweep queues a pointer path from (fromX, fromY) to (toX, toY) eased
// by the named function (see EaseFunc). The first queued position is the
// start point and the last is exactly the end point; the whole sequence
// consumes frames frames. Minimum frames is 2.
func (p *Pointer) InjectSweep(fromX, fromY, toX, toY float64, frames int, easeName string) {
	if frames < 2 {
		frames = 2
	}
	fn := EaseFunc(easeName)
	steps := float32(frames - 1)
	tx := gween.New(float32(fromX), float32(toX), steps, fn)
	ty := gween.New(float32(fromY), float32(toY), steps, fn)

	p.InjectMove(fromX, fromY)
	for i := 1; i < frames; i++ {
		x, doneX := tx.Update(1)
		y, doneY := ty.Update(1)
		if i == frames-1 || (doneX && doneY) {
			p.InjectMove(toX, toY)
			continue
		}
		p.InjectMove(float64(x), float64(y))
	}
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"outBounce":    ease.OutBounce,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// EaseFunc returns the easing function registered under name. Unknown and
// empty names fall back to linear.
func EaseFunc(name string) ease.TweenFunc {
	if fn, ok := easeFuncs[name]; ok {
		return fn
	}
	return ease.Linear
}
