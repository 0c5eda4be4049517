package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyphHeight is the pixel height of the builtin face.
const glyphHeight = 13

// DrawText draws a line of text with its top left corner at x, y.
// The size is a pixel height; the builtin face is scaled up to it
// with nearest neighbor so the labels stay crisp. Bold text is drawn
// twice with a one pixel offset.
func DrawText(dst *image.NRGBA, x, y int, text string, c color.NRGBA, size int, bold bool) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width == 0 {
		return
	}

	stamp := image.NewNRGBA(image.Rect(0, 0, width+1, glyphHeight))
	drawer := &font.Drawer{
		Dst:  stamp,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)
	if bold {
		drawer.Dot = fixed.P(1, face.Ascent)
		drawer.DrawString(text)
	}

	if size <= 0 {
		size = glyphHeight
	}
	scale := float64(size) / glyphHeight
	outW := int(float64(stamp.Bounds().Dx())*scale + 0.5)
	outH := size
	target := image.Rect(x, y, x+outW, y+outH)
	xdraw.NearestNeighbor.Scale(dst, target, stamp, stamp.Bounds(), xdraw.Over, nil)
}

// TextWidth returns the drawn pixel width of a line of text at the
// given size.
func TextWidth(text string, size int) int {
	width := font.MeasureString(basicfont.Face7x13, text).Ceil()
	if size <= 0 {
		size = glyphHeight
	}
	return int(float64(width) * float64(size) / glyphHeight)
}
