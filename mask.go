package spotlight

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// diskTemplateRadius is the radius of the pre-rendered disk that every cutout
// is scaled from. Large enough that the anti-aliased rim stays about one
// pixel wide for common cutout sizes.
const diskTemplateRadius = 256

// Mask is an offscreen canvas holding the translucent mask colour with one
// circular hole erased from it. The hole is punched with destination-out
// blending so it is fully transparent and whatever is drawn beneath the mask
// shows through unchanged.
type Mask struct {
	image *ebiten.Image
	w, h  int
	disk  *ebiten.Image
	imgOp ebiten.DrawImageOptions
}

// NewMask creates a mask covering (w x h) pixels.
func NewMask(w, h int) *Mask {
	return &Mask{
		image: ebiten.NewImage(max(w, 1), max(h, 1)),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (m *Mask) Image() *ebiten.Image {
	return m.image
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.h
}

// Resize deallocates the old image and creates a new one at the given dimensions.
// No-op when the size is unchanged.
func (m *Mask) Resize(w, h int) {
	if w == m.w && h == m.h {
		return
	}
	if m.image != nil {
		m.image.Deallocate()
	}
	m.image = ebiten.NewImage(max(w, 1), max(h, 1))
	m.w, m.h = w, h
}

// Redraw clears the canvas, fills it with c and erases a circle of radius
// at center. A radius of zero or less leaves the mask solid.
func (m *Mask) Redraw(c Color, center Vec2, radius float64) {
	m.image.Clear()
	m.image.Fill(c.toRGBA())
	if radius <= 0 {
		return
	}

	disk := m.diskImage()
	op := &m.imgOp
	op.GeoM.Reset()
	scale := radius / diskTemplateRadius
	op.GeoM.Translate(-diskTemplateRadius, -diskTemplateRadius)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.Reset()
	op.Blend = BlendErase.EbitenBlend()
	m.image.DrawImage(disk, op)
}

// diskImage returns the cached disk template, generating it on first use.
func (m *Mask) diskImage() *ebiten.Image {
	if m.disk == nil {
		m.disk = generateDisk(diskTemplateRadius)
	}
	return m.disk
}

// Dispose releases all images owned by the mask.
func (m *Mask) Dispose() {
	if m.image != nil {
		m.image.Deallocate()
		m.image = nil
	}
	if m.disk != nil {
		m.disk.Deallocate()
		m.disk = nil
	}
}

// generateDisk creates a solid white disk with a one-pixel anti-aliased rim.
// Pixels are premultiplied.
func generateDisk(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			a := uint8(diskCoverage(math.Sqrt(dx*dx+dy*dy), radius) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}

// diskCoverage returns how much of a pixel at distance dist from the centre
// is covered by a disk of the given radius: 1 inside, 0 outside and a linear
// ramp across the one-pixel rim.
func diskCoverage(dist, radius float64) float64 {
	return clamp01(radius - dist + 0.5)
}
