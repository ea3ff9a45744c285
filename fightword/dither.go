// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fightword

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither"
	"github.com/toothrot/fightwords/bitmap"
)

var monochrome = []color.Color{color.Black, color.White}

// Dither reduces img to pure black and white with Floyd-Steinberg error
// diffusion.
func Dither(img image.Image) *bitmap.Image {
	d := dither.NewDitherer(monochrome)
	d.Matrix = dither.FloydSteinberg
	if p := d.DitherPaletted(img); p != nil {
		return bitmap.Convert(p)
	}
	// Nearest color without diffusion.
	return bitmap.Convert(img)
}
