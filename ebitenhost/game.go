package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/flowfield"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	TPS           int // ticks per second for Update; 0 means ebiten's default (60)
	ShowFPS       bool
	Debug         bool
	ScreenshotDir string

	// Script, when set, replaces real pointer input with a scripted session.
	Script *flowfield.TestRunner
	// ExitWhenScriptDone closes the window once Script has finished.
	ExitWhenScriptDone bool
}

// Game is an ebiten.Game hosting one flow field. The window size is the
// surface size: every change reported by Layout rebuilds the animator.
type Game struct {
	cfg     RunConfig
	canvas  *Canvas
	sched   *FrameScheduler
	pointer *flowfield.Pointer
	host    *flowfield.Host
	fps     *fpsWidget

	width, height int
	started       bool

	screenshotQueue []string
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game for cfg. The animation starts on the first Update
// after ebiten has reported the window size.
func NewGame(cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = flowfield.DefaultScreenshotDir
	}
	g := &Game{
		cfg:     cfg,
		canvas:  NewCanvas(max(cfg.Width, 1), max(cfg.Height, 1)),
		sched:   NewFrameScheduler(),
		pointer: &flowfield.Pointer{},
		width:   cfg.Width,
		height:  cfg.Height,
	}
	g.host = flowfield.NewHost(g.canvas, g.sched, g.pointer)
	g.host.SetDebugMode(cfg.Debug)
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g
}

// Run opens a window and blocks until it is closed.
func Run(cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(NewGame(cfg))
}

// Update syncs the animator with the window size and feeds pointer input.
func (g *Game) Update() error {
	if err := g.syncSize(); err != nil {
		return err
	}

	if g.cfg.Script != nil {
		g.cfg.Script.Step(g)
		g.pointer.Poll()
		// Exit only once Draw has flushed the script's last screenshots.
		if g.cfg.ExitWhenScriptDone && g.cfg.Script.Done() && len(g.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	} else if !g.pointer.Poll() {
		x, y := ebiten.CursorPosition()
		g.pointer.MoveTo(float64(x), float64(y))
	}

	if g.fps != nil {
		g.fps.update(1/float64(ebiten.TPS()), g.host.Animator())
	}
	return nil
}

// syncSize starts the host on the first known size and replaces the animator
// whenever the size changes afterwards.
func (g *Game) syncSize() error {
	if g.width <= 0 || g.height <= 0 {
		return nil
	}
	if !g.started {
		if err := g.host.Start(g.width, g.height); err != nil {
			return err
		}
		g.started = true
		return nil
	}
	if w, h := g.host.Size(); w != g.width || h != g.height {
		g.host.Resize(g.width, g.height)
	}
	return nil
}

// Draw runs the scheduled frame callbacks and presents the canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sched.RunFrame()
	img := g.canvas.Image()
	screen.DrawImage(img, nil)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(img)
}

// Layout uses the window's logical size as the surface size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Pointer returns the cursor the animator reads.
func (g *Game) Pointer() *flowfield.Pointer {
	return g.pointer
}

// Resize asks the window to change size. The animator is rebuilt once ebiten
// reports the new layout.
func (g *Game) Resize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// Host returns the lifecycle host.
func (g *Game) Host() *flowfield.Host {
	return g.host
}
