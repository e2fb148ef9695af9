//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SlicePainter updates a single RGBA image from one xy-plane of cell data.
type SlicePainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

// NewSlicePainter allocates a painter for an n*n plane.
func NewSlicePainter(n int) *SlicePainter {
	if n <= 0 {
		n = 1
	}
	sp := &SlicePainter{n: n, buf: make([]byte, 4*n*n)}
	sp.img = ebiten.NewImage(n, n)
	return sp
}

// BlitBinary uploads a binary plane using on/off colors and draws it scaled.
func (sp *SlicePainter) BlitBinary(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != sp.n*sp.n {
		return
	}
	fillBinaryRGBA(sp.buf, cells, on, off)
	sp.img.WritePixels(sp.buf)
	sp.draw(dst, scale)
}

// BlitAges uploads a plane of cell ages through the palette and draws it
// scaled.
func (sp *SlicePainter) BlitAges(dst *ebiten.Image, ages []uint8, palette []color.RGBA, scale int) {
	if len(ages) != sp.n*sp.n {
		return
	}
	fillPaletteRGBA(sp.buf, ages, palette)
	sp.img.WritePixels(sp.buf)
	sp.draw(dst, scale)
}

// Size returns the plane edge length.
func (sp *SlicePainter) Size() int { return sp.n }

func (sp *SlicePainter) draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}
