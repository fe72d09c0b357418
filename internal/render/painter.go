//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"thermvox/internal/sim"
)

// SlicePainter uploads one chunk slice into a reusable RGBA image and
// draws it scaled.
type SlicePainter struct {
	img *ebiten.Image
	buf []byte
}

// NewSlicePainter allocates a painter sized for a chunk's x-y slice.
func NewSlicePainter() *SlicePainter {
	return &SlicePainter{
		img: ebiten.NewImage(sim.ChunkW, sim.ChunkH),
		buf: make([]byte, 4*sim.ChunkW*sim.ChunkH),
	}
}

// Blit draws chunk c's slice at depth z to dst at (offsetX, offsetY) with
// the given pixel scale and color range.
func (p *SlicePainter) Blit(dst *ebiten.Image, c *sim.Chunk, z int, scaleMin, scaleMax float32, scale, offsetX, offsetY int) {
	FillSliceRGBA(p.buf, c, z, scaleMin, scaleMax)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(p.img, op)
}

// GradientBar draws the static temperature color scale across the header.
type GradientBar struct {
	img *ebiten.Image
}

// NewGradientBar builds the scale image once for the given width.
func NewGradientBar(width int) *GradientBar {
	buf := make([]byte, 4*width)
	FillGradientRGBA(buf, width)
	img := ebiten.NewImage(width, 1)
	img.WritePixels(buf)
	return &GradientBar{img: img}
}

// Blit stretches the scale to the given height at (x, y).
func (g *GradientBar) Blit(dst *ebiten.Image, x, y, height int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, float64(height))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(g.img, op)
}

var pixel *ebiten.Image

// FillRect draws a solid rectangle by scaling a shared 1x1 white pixel.
func FillRect(dst *ebiten.Image, x, y, w, h int, col color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(pixel, op)
}

// StrokeRect outlines a rectangle with 1-pixel edges.
func StrokeRect(dst *ebiten.Image, x, y, w, h int, col color.Color) {
	FillRect(dst, x, y, w, 1, col)
	FillRect(dst, x, y+h-1, w, 1, col)
	FillRect(dst, x, y, 1, h, col)
	FillRect(dst, x+w-1, y, 1, h, col)
}
