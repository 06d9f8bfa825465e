package spotlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and cached layout state.
type TextBlock struct {
	Content   string
	Font      Font
	Align     TextAlign
	WrapWidth float64 // 0 = no wrapping; otherwise wrap at word boundaries
	Color     Color

	// Cached layout (unexported)
	layoutDirty bool
	lines       []string
	lineWidths  []float64
	measuredW   float64
	measuredH   float64
	wrapUsed    float64
	contentUsed string

	// Rendered cache (unexported)
	image      *ebiten.Image
	imageDirty bool
}

// SetContent replaces the text and invalidates the cached layout.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.layoutDirty = true
}

// Invalidate forces the next layout pass to re-measure the block.
func (tb *TextBlock) Invalidate() {
	tb.layoutDirty = true
}

// Measure returns the laid-out size of the block, recomputing if dirty.
func (tb *TextBlock) Measure() (w, h float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// layout recomputes line breaks if dirty.
func (tb *TextBlock) layout() {
	if !tb.layoutDirty && tb.wrapUsed == tb.WrapWidth && tb.contentUsed == tb.Content {
		return
	}
	tb.layoutDirty = false
	tb.wrapUsed = tb.WrapWidth
	tb.contentUsed = tb.Content
	tb.imageDirty = true

	tb.lines = tb.lines[:0]
	tb.lineWidths = tb.lineWidths[:0]
	tb.measuredW, tb.measuredH = 0, 0
	if tb.Font == nil || tb.Content == "" {
		return
	}

	for _, para := range strings.Split(tb.Content, "\n") {
		tb.wrapParagraph(para)
	}
	for _, w := range tb.lineWidths {
		if w > tb.measuredW {
			tb.measuredW = w
		}
	}
	tb.measuredH = float64(len(tb.lines)) * tb.Font.LineHeight()
}

// wrapParagraph appends the lines of a single paragraph using greedy word
// wrapping against WrapWidth. A single word wider than WrapWidth gets its own
// line rather than being split.
func (tb *TextBlock) wrapParagraph(para string) {
	words := strings.Fields(para)
	if len(words) == 0 || tb.WrapWidth <= 0 {
		w, _ := tb.Font.MeasureString(para)
		tb.lines = append(tb.lines, para)
		tb.lineWidths = append(tb.lineWidths, w)
		return
	}
	line := words[0]
	lineW, _ := tb.Font.MeasureString(line)
	for _, word := range words[1:] {
		candidate := line + " " + word
		cw, _ := tb.Font.MeasureString(candidate)
		if cw > tb.WrapWidth {
			tb.lines = append(tb.lines, line)
			tb.lineWidths = append(tb.lineWidths, lineW)
			line = word
			lineW, _ = tb.Font.MeasureString(word)
			continue
		}
		line, lineW = candidate, cw
	}
	tb.lines = append(tb.lines, line)
	tb.lineWidths = append(tb.lineWidths, lineW)
}

// Lines returns the wrapped lines from the last layout.
func (tb *TextBlock) Lines() []string {
	tb.layout()
	return tb.lines
}

// draw renders the block at (x, y). The rasterized text is cached in an
// offscreen image and only re-rendered when the layout changes.
func (tb *TextBlock) draw(dst *ebiten.Image, x, y, alpha float64) {
	tb.layout()
	f, ok := tb.Font.(*TTFFont)
	if !ok || tb.measuredW == 0 || tb.measuredH == 0 {
		return
	}
	w := int(tb.measuredW) + 1
	h := int(tb.measuredH) + 1

	if tb.imageDirty || tb.image == nil {
		tb.imageDirty = false
		if tb.image != nil {
			b := tb.image.Bounds()
			if b.Dx() != w || b.Dy() != h {
				tb.image.Deallocate()
				tb.image = ebiten.NewImage(w, h)
			} else {
				tb.image.Clear()
			}
		} else {
			tb.image = ebiten.NewImage(w, h)
		}

		lh := f.LineHeight()
		for i, line := range tb.lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(alignOffset(tb.Align, tb.measuredW, tb.lineWidths[i]), float64(i)*lh)
			op.ColorScale.Scale(float32(tb.Color.R), float32(tb.Color.G), float32(tb.Color.B), float32(tb.Color.A))
			text.Draw(tb.image, line, f.face, op)
		}
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(tb.image, &op)
}

func alignOffset(a TextAlign, blockW, lineW float64) float64 {
	switch a {
	case TextAlignCenter:
		return (blockW - lineW) / 2
	case TextAlignRight:
		return blockW - lineW
	default:
		return 0
	}
}

// dispose releases the cached text image.
func (tb *TextBlock) dispose() {
	if tb.image != nil {
		tb.image.Deallocate()
		tb.image = nil
	}
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("spotlight: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face: face,
		size: size,
		lh:   lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// defaultFonts caches the Go fonts used when a caption has no font set.
// Keyed by bold flag and size.
var defaultFonts = map[defaultFontKey]*TTFFont{}

type defaultFontKey struct {
	bold bool
	size float64
}

// DefaultFont returns the bundled Go Regular (or Go Bold) font at size.
func DefaultFont(bold bool, size float64) (*TTFFont, error) {
	key := defaultFontKey{bold: bold, size: size}
	if f, ok := defaultFonts[key]; ok {
		return f, nil
	}
	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	f, err := LoadTTFFont(data, size)
	if err != nil {
		return nil, err
	}
	defaultFonts[key] = f
	return f, nil
}
