package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/phanxgames/flowfield"
	"github.com/phanxgames/flowfield/ebitenhost"
	"github.com/phanxgames/flowfield/internal/config"
	"github.com/phanxgames/flowfield/offscreen"
)

var (
	configFile string

	title         string
	width         int
	height        int
	tps           int
	showFPS       bool
	debug         bool
	screenshotDir string

	scriptFile   string
	exitWhenDone bool

	frames   int
	stepMs   float64
	output   string
	gifDelay int
	cursorX  float64
	cursorY  float64

	maxFrames int
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc143c"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6a7bff")).Bold(true)
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "flowfield",
		Short:        "animated flow field",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log per-frame stats to stderr")
	rootCmd.PersistentFlags().StringVar(&screenshotDir, "screenshots", config.DefaultScreenshotDir, "screenshot directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open a window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVar(&title, "title", config.DefaultTitle, "window title")
		c.Flags().IntVar(&tps, "tps", config.DefaultTPS, "updates per second")
		c.Flags().BoolVar(&showFPS, "fps", false, "show FPS overlay")
		c.Flags().StringVar(&scriptFile, "script", "", "play a JSON test script instead of reading the mouse")
		c.Flags().BoolVar(&exitWhenDone, "exit", false, "close the window when the script finishes")
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headlessly to a GIF or a PNG directory",
		Args:  cobra.NoArgs,
		RunE:  renderFrames,
	}
	renderCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to step")
	renderCmd.Flags().Float64Var(&stepMs, "step", 1000.0/60.0, "simulated milliseconds per frame")
	renderCmd.Flags().StringVarP(&output, "out", "o", "flowfield.gif", "output .gif file or PNG directory")
	renderCmd.Flags().IntVar(&gifDelay, "delay", config.DefaultGIFDelay, "GIF frame delay in 100ths of a second")
	renderCmd.Flags().Float64Var(&cursorX, "cursor-x", config.DefaultWidth/2, "fixed cursor x")
	renderCmd.Flags().Float64Var(&cursorY, "cursor-y", config.DefaultHeight/2, "fixed cursor y")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "play a JSON test script headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().Float64Var(&stepMs, "step", 1000.0/60.0, "simulated milliseconds per frame")
	scriptCmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "give up after this many frames (0 = no limit)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time headless redraws",
		Args:  cobra.NoArgs,
		RunE:  benchFrames,
	}
	benchCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to step")
	benchCmd.Flags().Float64Var(&cursorX, "cursor-x", config.DefaultWidth/2, "fixed cursor x")
	benchCmd.Flags().Float64Var(&cursorY, "cursor-y", config.DefaultHeight/2, "fixed cursor y")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, renderCmd, scriptCmd, benchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file, if any, under explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Without a config file every flag applies, defaults included; with one,
	// only flags given on the command line override it.
	flags := cmd.Flags()
	use := func(name string) bool {
		return flags.Lookup(name) != nil && (configFile == "" || flags.Changed(name))
	}
	if use("title") {
		cfg.Title = title
	}
	if use("width") {
		cfg.Width = width
	}
	if use("height") {
		cfg.Height = height
	}
	if use("tps") {
		cfg.TPS = tps
	}
	if use("fps") {
		cfg.ShowFPS = showFPS
	}
	if use("debug") {
		cfg.Debug = debug
	}
	if use("screenshots") {
		cfg.ScreenshotDir = screenshotDir
	}
	if use("frames") {
		cfg.Render.Frames = frames
	}
	if use("step") {
		cfg.Render.StepMs = stepMs
	}
	if use("out") {
		cfg.Render.Output = output
	}
	if use("delay") {
		cfg.Render.GIFDelay = gifDelay
	}
	if use("cursor-x") {
		cfg.Render.Cursor.X = cursorX
	}
	if use("cursor-y") {
		cfg.Render.Cursor.Y = cursorY
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadScript(path string) (*flowfield.TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return flowfield.LoadTestScript(data)
}

func newSession(cfg *config.Config) (*offscreen.Session, error) {
	return offscreen.NewSession(offscreen.Config{
		Width:         cfg.Width,
		Height:        cfg.Height,
		StepMs:        cfg.Render.StepMs,
		Cursor:        flowfield.Cursor{X: cfg.Render.Cursor.X, Y: cfg.Render.Cursor.Y},
		Debug:         cfg.Debug,
		ScreenshotDir: cfg.ScreenshotDir,
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runCfg := ebitenhost.RunConfig{
		Title:         cfg.Title,
		Width:         cfg.Width,
		Height:        cfg.Height,
		TPS:           cfg.TPS,
		ShowFPS:       cfg.ShowFPS,
		Debug:         cfg.Debug,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if scriptFile != "" {
		runner, err := loadScript(scriptFile)
		if err != nil {
			return err
		}
		runCfg.Script = runner
		runCfg.ExitWhenScriptDone = exitWhenDone
	}
	return ebitenhost.Run(runCfg)
}

func renderFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	out := cfg.Render.Output
	var n int
	if strings.EqualFold(filepath.Ext(out), ".gif") {
		n, err = offscreen.ExportGIF(ctx, s, cfg.Render.Frames, cfg.Render.GIFDelay, out)
	} else {
		n, err = offscreen.ExportPNGs(ctx, s, cfg.Render.Frames, out)
	}
	if err != nil {
		return err
	}
	fmt.Printf("rendered %d frames (%d steps) to %s\n", n, cfg.Render.Frames, out)
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runner, err := loadScript(args[0])
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	if err := s.RunScript(ctx, runner, maxFrames, nil); err != nil {
		return err
	}
	fmt.Printf("script finished after %d frames\n", s.Frame())
	for _, p := range s.Screenshots() {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func benchFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	res, err := offscreen.Bench(ctx, s, cfg.Render.Frames)
	if err != nil {
		return err
	}
	if len(res.DrawTimes) == 0 {
		return fmt.Errorf("no redraws in %d frames", res.Steps)
	}

	cols, rows := flowfield.GridSize(cfg.Width, cfg.Height, flowfield.CellSize)
	fmt.Println(titleStyle.Render(fmt.Sprintf("flowfield bench %dx%d", cfg.Width, cfg.Height)))
	fmt.Println()
	row := func(label, value string) {
		fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
	}
	row("grid", fmt.Sprintf("%d x %d", cols, rows))
	row("segments", fmt.Sprintf("%d", res.Segments))
	row("steps", fmt.Sprintf("%d", res.Steps))
	row("redraws", fmt.Sprintf("%d", len(res.DrawTimes)))
	row("mean redraw", res.Mean().Round(time.Microsecond).String())
	row("max redraw", res.Max().Round(time.Microsecond).String())
	row("total", res.Total.Round(time.Millisecond).String())
	fmt.Println()

	graph := asciigraph.Plot(res.Milliseconds(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("redraw time (ms)"),
	)
	fmt.Println(graph)
	return nil
}
