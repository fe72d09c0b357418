//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var face = basicfont.Face7x13

// DrawText renders white text with a 1-pixel drop shadow. y is the top of
// the line, not the baseline.
func DrawText(dst *ebiten.Image, s string, x, y int) {
	baseline := y + face.Ascent
	text.Draw(dst, s, face, x+1, baseline+1, color.Black)
	text.Draw(dst, s, face, x, baseline, color.White)
}

// DrawTextCentered renders text centered on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, cx, cy int) {
	bounds := text.BoundString(face, s)
	x := cx - bounds.Dx()/2
	y := cy - bounds.Dy()/2
	DrawText(dst, s, x, y)
}
