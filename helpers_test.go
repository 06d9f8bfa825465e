package spotlight

import (
	"testing"
	"time"
)

// monoFont is a fixed-advance font for layout tests: every rune is charW
// wide and lines are lineH tall.
type monoFont struct {
	charW, lineH float64
}

func (f monoFont) MeasureString(s string) (float64, float64) {
	return float64(len([]rune(s))) * f.charW, f.lineH
}

func (f monoFont) LineHeight() float64 {
	return f.lineH
}

const testFrame = 1.0 / 60

// stepUntil advances w frame by frame until cond holds.
func stepUntil(t *testing.T, w *Window, cond func() bool) {
	t.Helper()
	for i := 0; i < 300; i++ {
		if cond() {
			return
		}
		w.Advance(testFrame)
	}
	t.Fatal("condition not reached after 300 frames")
}

// stepFrames advances w by n frames.
func stepFrames(w *Window, n int) {
	for i := 0; i < n; i++ {
		w.Advance(testFrame)
	}
}

// tap injects a tap at (x, y) and runs the two frames it takes.
func tap(w *Window, x, y float64) {
	w.InjectTap(x, y)
	stepFrames(w, 2)
}

// fastConfig returns a Config with short animations for w and targets.
func fastConfig(w *Window, targets ...*Target) Config {
	return Config{
		Host:        w,
		Targets:     targets,
		Duration:    100 * time.Millisecond,
		MaskFadeIn:  100 * time.Millisecond,
		MaskFadeOut: 100 * time.Millisecond,
	}
}

func mustTarget(t *testing.T, w *Window, x, y, r float64) *Target {
	t.Helper()
	tg, err := NewTarget(TargetConfig{Host: w, Point: Vec2{X: x, Y: y}, Radius: r}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tg
}
