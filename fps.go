package spotlight

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the FPS readout is redrawn.
const fpsRefresh = 500 * time.Millisecond

// NewFPSView creates a view that displays the current FPS and TPS, refreshed
// about twice a second with ebitenutil.DebugPrint.
func NewFPSView() *View {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	v := NewImageView("fps", img)

	var last time.Time
	v.OnDraw = func(dst *ebiten.Image, bounds Rect, alpha float64) {
		if now := time.Now(); now.Sub(last) >= fpsRefresh {
			last = now
			img.Clear()
			// Semi-transparent background for readability
			img.Fill(color.RGBA{0, 0, 0, 128})
			ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(bounds.X, bounds.Y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(img, &op)
	}
	return v
}
