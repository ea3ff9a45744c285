// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fightword

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// ContentBounds returns the smallest rectangle holding every pixel darker
// than Background. An image without such pixels is its own content.
func ContentBounds(img *image.Gray) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Min.X, y)+b.Dx()]
		for i, v := range row {
			if v >= Background {
				continue
			}
			x := b.Min.X + i
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return b
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Recrop crops img to its content, scales the crop to fit w x h keeping its
// aspect ratio, and centers it on a white w x h canvas.
func Recrop(img *image.Gray, w, h int) *image.Gray {
	box := ContentBounds(img)
	crop := imaging.Crop(img, box)
	cw, ch := float64(box.Dx()), float64(box.Dy())
	scale := math.Min(float64(w)/cw, float64(h)/ch)
	sw := clamp(int(math.Round(cw*scale)), 1, w)
	sh := clamp(int(math.Round(ch*scale)), 1, h)
	scaled := imaging.Resize(crop, sw, sh, imaging.Lanczos)
	return toGray(imaging.PasteCenter(imaging.New(w, h, color.White), scaled))
}
