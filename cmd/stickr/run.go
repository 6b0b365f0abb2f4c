package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/phanxgames/stickr"
)

type runOptions struct {
	*rootOptions
	scriptPath string
	imagePath  string
	width      int
	height     int
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and transform an image with touch or mouse input",
		Long: `Open a window showing a single image. One finger (or the left mouse
button) moves it; two fingers rotate, scale (when far apart vertically) or
tilt it. Press D to toggle the debug overlay and Escape to cancel the
current gesture.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "", "play a gesture script instead of reading input")
	cmd.Flags().StringVarP(&opts.imagePath, "image", "i", "", "image to display (default: generated checkerboard)")
	cmd.Flags().IntVar(&opts.width, "width", 960, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 720, "window height")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())
	engine, err := o.newEngine(cmd.Context())
	if err != nil {
		return err
	}

	img, err := o.loadImage()
	if err != nil {
		return err
	}

	g := &game{
		engine:   engine,
		source:   stickr.NewTouchSource(true),
		renderer: stickr.NewRenderer(img),
		logger:   logger,
		debug:    o.verbose,
	}
	if o.scriptPath != "" {
		script, err := stickr.LoadScriptFile(o.scriptPath)
		if err != nil {
			return err
		}
		g.runner = stickr.NewScriptRunner(script)
		logger.Info("playing script", "path", o.scriptPath, "frames", script.Frames())
	}

	ebiten.SetWindowTitle("stickr")
	ebiten.SetWindowSize(o.width, o.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGameWithOptions(g, nil)
}

func (o *runOptions) loadImage() (*ebiten.Image, error) {
	if o.imagePath == "" {
		return checkerboard(256, 32), nil
	}
	img, _, err := ebitenutil.NewImageFromFile(o.imagePath)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", o.imagePath, err)
	}
	return img, nil
}

// checkerboard builds a size x size test image of cell-sized squares.
func checkerboard(size, cell int) *ebiten.Image {
	light := color.RGBA{R: 0xe0, G: 0xd8, B: 0xc8, A: 0xff}
	dark := color.RGBA{R: 0x3a, G: 0x5f, B: 0x8f, A: 0xff}
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				rgba.SetRGBA(x, y, light)
			} else {
				rgba.SetRGBA(x, y, dark)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

// game adapts the engine to ebiten's Game interface.
type game struct {
	engine   *stickr.Engine
	source   *stickr.TouchSource
	renderer *stickr.Renderer
	runner   *stickr.ScriptRunner
	logger   *log.Logger

	debug         bool
	width, height int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.HandleEvent(stickr.TouchEvent{Kind: stickr.EventCancel, Pointer: stickr.InvalidPointer})
	}

	if g.runner != nil && !g.runner.Done() {
		g.runner.Step(g.engine)
		if g.runner.Done() {
			g.engine.LogState(g.logger)
		}
	} else {
		g.source.Feed(g.engine)
	}

	if g.engine.ConsumeRedraw() && g.debug {
		g.engine.LogState(g.logger.With("frame", ebiten.Tick()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff})
	g.renderer.Draw(screen, g.engine.Quad())
	g.renderer.DrawHandles(screen, g.engine.Handles())

	if !g.debug {
		return
	}
	st := g.engine.State()
	first, second := g.engine.Pointers()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  mode: %s\ntranslate: %.1f, %.1f\nscale: %.3f  rotation: %.1f\ntilt: %.1f, %.1f\npointers: %d, %d",
		ebiten.ActualFPS(), g.engine.Mode(),
		st.Translation.X, st.Translation.Y,
		st.Scale, st.Rotation,
		st.TiltX, st.TiltY,
		first, second,
	))
}

// Layout keeps the element centered in the window at its native size. A
// script with its own bounds overrides them on its first frame.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		b := g.renderer.Image.Bounds()
		w, h := float64(b.Dx()), float64(b.Dy())
		g.engine.SetBounds(stickr.Rect{
			X:      (float64(outsideWidth) - w) / 2,
			Y:      (float64(outsideHeight) - h) / 2,
			Width:  w,
			Height: h,
		})
	}
	return outsideWidth, outsideHeight
}
