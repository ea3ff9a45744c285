package ssd1306

import (
	"image"
	"image/color"

	"github.com/toothrot/fightwords/bitmap"
)

var litPalette = color.Palette{color.White, color.Black}

// pack writes img into buf in the controller's page layout: byte
// page*DisplayWidth+x holds column x of rows page*8 to page*8+7, least
// significant bit on top. A bit is set for black pixels. Pixels outside img
// are unlit.
func pack(buf []byte, img image.Image) {
	for i := range buf {
		buf[i] = 0
	}
	b := img.Bounds()
	bi, _ := img.(*bitmap.Image)
	for y := 0; y < DisplayHeight; y++ {
		row := (y / 8) * DisplayWidth
		bit := byte(1 << (uint(y) % 8))
		for x := 0; x < DisplayWidth; x++ {
			p := image.Pt(b.Min.X+x, b.Min.Y+y)
			if !p.In(b) {
				continue
			}
			var lit bool
			if bi != nil {
				lit = bi.IsBlack(p.X, p.Y)
			} else {
				lit = litPalette.Index(img.At(p.X, p.Y)) == 1
			}
			if lit {
				buf[row+x] |= bit
			}
		}
	}
}

// Pack returns img in the controller's page layout. See Draw.
func Pack(img image.Image) []byte {
	buf := make([]byte, BufSize)
	pack(buf, img)
	return buf
}
