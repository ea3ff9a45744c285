// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitmap is a packed one bit per pixel image, laid out the way PBM
// (P4) files and small monochrome displays expect it.
package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	White = Color{0}
	Black = Color{1}

	Model = color.ModelFunc(model)

	defaultPalette = color.Palette{White, Black}
)

type Color struct {
	// 0 white, 1 black
	C uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if c.C == 0 {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func model(c color.Color) color.Color {
	return defaultPalette.Convert(c)
}

// Image stores pixels as a bit per pixel, most significant bit first. Each
// row starts on a byte boundary. A set bit is black.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewImage returns an all white Image.
func NewImage(r image.Rectangle) *Image {
	stride := r.Dx() / 8
	if r.Dx()%8 != 0 {
		stride += 1
	}
	return &Image{
		Pix:    make([]byte, r.Dy()*stride),
		Stride: stride,
		Rect:   r,
	}
}

// Convert draws img into a new Image of the same bounds. Colors are assigned
// to black or white by nearest euclidean distance.
func Convert(img image.Image) *Image {
	dst := NewImage(img.Bounds())
	if p, ok := img.(*image.Paletted); ok {
		dst.drawPaletted(p)
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

func (i *Image) drawPaletted(p *image.Paletted) {
	black := make([]bool, len(p.Palette))
	for n, c := range p.Palette {
		black[n] = defaultPalette.Index(c) == 1
	}
	b := p.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if black[p.ColorIndexAt(x, y)] {
				i.setBit(x, y, true)
			}
		}
	}
}

func (i *Image) offset(x, y int) (int, byte) {
	px := (x-i.Rect.Min.X)/8 + (y-i.Rect.Min.Y)*i.Stride
	bit := byte(0x80 >> (uint32(x-i.Rect.Min.X) % 8))
	return px, bit
}

func (i *Image) setBit(x, y int, black bool) {
	px, bit := i.offset(x, y)
	if black {
		i.Pix[px] |= bit
	} else {
		i.Pix[px] &= ^bit
	}
}

func (i *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	var pi int
	if cc, ok := c.(Color); ok {
		pi = int(cc.C)
	} else {
		pi = defaultPalette.Index(c)
	}
	i.setBit(x, y, pi == 1)
}

func (i *Image) ColorModel() color.Model {
	return Model
}

func (i *Image) Bounds() image.Rectangle {
	return i.Rect
}

func (i *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return White
	}
	if i.IsBlack(x, y) {
		return Black
	}
	return White
}

// IsBlack reports whether the pixel at (x, y) is black. Points outside the
// image are white.
func (i *Image) IsBlack(x, y int) bool {
	if !(image.Point{x, y}.In(i.Rect)) {
		return false
	}
	px, bit := i.offset(x, y)
	return i.Pix[px]&bit != 0
}

// Invert flips every pixel. Padding bits at the end of each row stay clear.
func (i *Image) Invert() {
	w := i.Rect.Dx()
	var last byte = 0xff
	if rem := w % 8; rem != 0 {
		last = byte(0xff << (8 - uint(rem)))
	}
	for y := 0; y < i.Rect.Dy(); y++ {
		row := i.Pix[y*i.Stride : (y+1)*i.Stride]
		for n := range row {
			row[n] = ^row[n]
		}
		if len(row) > 0 {
			row[len(row)-1] &= last
		}
	}
}

// Count returns the number of black pixels.
func (i *Image) Count() int {
	var n int
	for y := i.Rect.Min.Y; y < i.Rect.Max.Y; y++ {
		for x := i.Rect.Min.X; x < i.Rect.Max.X; x++ {
			if i.IsBlack(x, y) {
				n++
			}
		}
	}
	return n
}

// Paletted returns a copy of i as a two color *image.Paletted, which the
// standard encoders handle natively.
func (i *Image) Paletted() *image.Paletted {
	p := image.NewPaletted(i.Rect, color.Palette{color.White, color.Black})
	for y := i.Rect.Min.Y; y < i.Rect.Max.Y; y++ {
		for x := i.Rect.Min.X; x < i.Rect.Max.X; x++ {
			if i.IsBlack(x, y) {
				p.SetColorIndex(x, y, 1)
			}
		}
	}
	return p
}
