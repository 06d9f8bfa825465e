package spotlight

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Host is the environment a Spotlight sequence runs in: a root content view
// the overlay attaches to, the display size used for caption placement, an
// animation driver and a logger. Window is the bundled implementation.
type Host interface {
	// Root returns the root content view overlays attach to.
	Root() *View
	// Size returns the display size in pixels.
	Size() Vec2
	// Play starts a and keeps updating it every frame until it is done.
	Play(a *Animation)
	// Logger returns the logger used for diagnostics.
	Logger() *zerolog.Logger
}

// WhitePixel is a 1x1 white image used by default for solid color views.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Window is a Host backed by Ebitengine. It owns the view tree, lays it out,
// drives animations and input, and draws everything in painter order.
type Window struct {
	root          *View
	width, height float64
	debug         bool
	logger        zerolog.Logger

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	animations []*Animation
	updateFunc func() error

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*View
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	// Scripted testing
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to "screenshots".
	ScreenshotDir string
}

// NewWindow creates a window of the given size with an empty root view.
func NewWindow(width, height float64) *Window {
	root := NewView("root")
	root.Interactable = true
	root.Width = width
	root.Height = height
	return &Window{
		root:          root,
		width:         width,
		height:        height,
		logger:        zerolog.Nop(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the window's root content view.
func (w *Window) Root() *View {
	return w.root
}

// Size returns the window size in pixels.
func (w *Window) Size() Vec2 {
	return Vec2{X: w.width, Y: w.height}
}

// SetSize resizes the window and its root view. Views measured against the
// old size are re-measured on the next layout pass; one-shot post-layout
// hooks that already ran are not repeated.
func (w *Window) SetSize(width, height float64) {
	w.width, w.height = width, height
	w.root.Width, w.root.Height = width, height
}

// Logger returns the window's logger.
func (w *Window) Logger() *zerolog.Logger {
	return &w.logger
}

// SetLogger replaces the window's logger. The default discards everything.
func (w *Window) SetLogger(l zerolog.Logger) {
	w.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-view
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLogger = w.logger
	}
}

// globalDebug mirrors the most recently set Window debug flag so that view
// operations (which lack a Window pointer) can check it cheaply. Only valid
// with a single Window.
var globalDebug bool

// debugLogger is the logger of the window that last enabled debug mode.
var debugLogger = zerolog.Nop()

// SetUpdateFunc registers a callback run at the end of every Update.
func (w *Window) SetUpdateFunc(fn func() error) {
	w.updateFunc = fn
}

// Play starts a and updates it every frame until it is done.
func (w *Window) Play(a *Animation) {
	a.Start()
	if a.Done {
		return
	}
	w.animations = append(w.animations, a)
}

// ActiveAnimations returns the number of animations still running.
func (w *Window) ActiveAnimations() int {
	return len(w.animations)
}

// Update advances the window by one tick at the current TPS.
func (w *Window) Update() error {
	w.Advance(1.0 / float64(ebiten.TPS()))
	if w.updateFunc != nil {
		return w.updateFunc()
	}
	return nil
}

// Advance runs one frame of layout, input and animation with the given
// timestep in seconds. Update calls it with the real tick length; tests and
// hosts with their own clock call it directly.
func (w *Window) Advance(dt float64) {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}

	w.layout()
	w.processInput()
	w.updateAnimations(float32(dt))
}

// layout measures the whole tree and then fires pending post-layout hooks.
func (w *Window) layout() {
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}
	n := layoutTree(w.root, w.width, w.height)
	runLayoutHooks(w.root)
	if w.debug {
		w.logger.Debug().Int("views", n).Dur("layout", time.Since(t0)).Msg("layout pass")
	}
}

// updateAnimations ticks every running animation. Animations started from an
// OnEnd callback begin ticking on the next frame.
func (w *Window) updateAnimations(dt float32) {
	if len(w.animations) == 0 {
		return
	}
	running := w.animations
	w.animations = nil
	for _, a := range running {
		a.Update(dt)
	}
	kept := running[:0]
	for _, a := range running {
		if !a.Done {
			kept = append(kept, a)
		}
	}
	w.animations = append(kept, w.animations...)
}

// Draw paints the view tree onto screen.
func (w *Window) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}
	if w.ClearColor.A > 0 {
		screen.Fill(w.ClearColor.toRGBA())
	}
	n := drawView(screen, w.root, 0, 0, 1)
	if w.debug {
		w.logStats(frameStats{views: n, drawTime: time.Since(t0), animations: len(w.animations)})
	}
	w.flushScreenshots(screen)
}

// drawView paints v and its subtree. Returns the number of views drawn.
func drawView(dst *ebiten.Image, v *View, px, py, parentAlpha float64) int {
	if !v.Visible || v.disposed {
		return 0
	}
	x, y := px+v.X, py+v.Y
	alpha := parentAlpha * v.Alpha
	if alpha <= 0 {
		return 0
	}
	w, h := v.Size()
	count := 1

	switch {
	case v.OnDraw != nil:
		v.OnDraw(dst, Rect{X: x, Y: y, Width: w, Height: h}, alpha)
	case v.customImage != nil:
		var op ebiten.DrawImageOptions
		b := v.customImage.Bounds()
		if w > 0 && h > 0 && b.Dx() > 0 && b.Dy() > 0 {
			op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Blend = v.BlendMode.EbitenBlend()
		dst.DrawImage(v.customImage, &op)
	case v.Color.A > 0 && w > 0 && h > 0:
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(x, y)
		a := v.Color.A * alpha
		op.ColorScale.Scale(float32(v.Color.R*a), float32(v.Color.G*a), float32(v.Color.B*a), float32(a))
		op.Blend = v.BlendMode.EbitenBlend()
		dst.DrawImage(WhitePixel, &op)
	}

	if v.TextBlock != nil {
		v.TextBlock.draw(dst, x+v.PaddingLeft, y+v.PaddingTop, alpha)
	}

	for _, child := range v.children {
		count += drawView(dst, child, x, y, alpha)
	}
	return count
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
