package render

import (
	"image/color"

	"thermvox/internal/sim"
)

// TemperatureColor maps a temperature to a blue-green-red ramp over
// [scaleMin, scaleMax]. A degenerate scale renders black.
func TemperatureColor(temp, scaleMin, scaleMax float32) color.RGBA {
	if scaleMax-scaleMin < 1e-6 {
		return color.RGBA{A: 255}
	}
	t := (temp - scaleMin) / (scaleMax - scaleMin)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	r := clamp255(255 * (2*t - 0.5))
	g := clamp255(255 * (1 - abs32(2*t-1)))
	b := clamp255(255 * (1 - 2*t))
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// FillSliceRGBA writes the x-y slice of chunk c at depth z into buf
// (ChunkW*ChunkH RGBA pixels, row-major, y down). Void cells stay black.
func FillSliceRGBA(buf []byte, c *sim.Chunk, z int, scaleMin, scaleMax float32) {
	for y := 0; y < sim.ChunkH; y++ {
		for x := 0; x < sim.ChunkW; x++ {
			base := (y*sim.ChunkW + x) * 4
			i := sim.Idx(x, y, z)
			if c.MatIx[i] == c.VoidIx {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 255
				continue
			}
			col := TemperatureColor(c.TCurr[i], scaleMin, scaleMax)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// FillGradientRGBA writes a one-pixel-tall left-to-right color scale of the
// given width into buf.
func FillGradientRGBA(buf []byte, width int) {
	denom := float32(width - 1)
	if denom < 1 {
		denom = 1
	}
	for x := 0; x < width; x++ {
		col := TemperatureColor(float32(x)/denom, 0, 1)
		base := x * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
