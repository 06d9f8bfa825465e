package spotlight

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size. Zero uses the Window's size.
	Width, Height int
	// ShowFPS adds an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// gameShell adapts a Window to ebiten.Game.
type gameShell struct {
	w *Window
}

func (g *gameShell) Update() error {
	return g.w.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.w.Draw(screen)
}

// Layout follows the outside size so the mask always covers the screen.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.w.Size()
	if float64(outsideWidth) != size.X || float64(outsideHeight) != size.Y {
		g.w.SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives w until the window is closed or the update
// function returns an error. For full control implement ebiten.Game and call
// Window.Update and Window.Draw directly.
func Run(w *Window, cfg RunConfig) error {
	size := w.Size()
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = int(size.X)
	}
	if height <= 0 {
		height = int(size.Y)
	}
	w.SetSize(float64(width), float64(height))

	if cfg.ShowFPS {
		w.Root().AddChild(NewFPSView())
	}

	ebiten.SetWindowSize(width, height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Info().Int("width", width).Int("height", height).Str("title", cfg.Title).Msg("spotlight: run")
	return ebiten.RunGame(&gameShell{w: w})
}
