package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/flowfield"
)

// fpsWidget displays the current FPS, TPS and the animator's radius in the
// top-left corner. Its text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSWidget() *fpsWidget {
	// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nR: -4.99"
	return &fpsWidget{img: ebiten.NewImage(120, 48), lastUpdate: 0.5}
}

func (w *fpsWidget) update(dt float64, anim *flowfield.Animator) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if anim != nil {
		msg += fmt.Sprintf("\nR: %.2f", anim.Radius())
	}
	ebitenutil.DebugPrint(w.img, msg)
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
