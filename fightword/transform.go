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

// Every transform here is an inverse mapping: for each destination pixel a
// source coordinate is computed and the source pixel copied when it is in
// bounds. Outputs always have the input's size and an origin of (0, 0).

// Rotate rotates src counter-clockwise by degrees around its center. Areas
// uncovered by the rotation are white.
func Rotate(src *image.Gray, degrees float64) *image.Gray {
	b := src.Bounds()
	rot := imaging.Rotate(src, degrees, color.White)
	return toGray(imaging.CropCenter(rot, b.Dx(), b.Dy()))
}

// Shear slants src horizontally by sx and vertically by sy. Pixels whose
// source falls outside src are white.
func Shear(src *image.Gray, sx, sy float64) *image.Gray {
	src = toGray(src)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcX := int(float64(x) - sx*float64(y))
			srcY := int(float64(y) - sy*float64(x))
			if srcX >= 0 && srcX < w && srcY >= 0 && srcY < h {
				dst.Pix[y*dst.Stride+x] = src.Pix[srcY*src.Stride+srcX]
			}
		}
	}
	return dst
}

// FisheyeRadius is the radius of the bulge for an image of the given size.
func FisheyeRadius(w, h int) float64 {
	return 0.7 * float64(min(w, h))
}

// Fisheye bulges src outward around center. Pixels within FisheyeRadius of
// center are magnified by up to 1+strength; a pixel whose source falls
// outside src keeps its own value, so the bulge never opens holes.
func Fisheye(src *image.Gray, center image.Point, strength float64) *image.Gray {
	src = toGray(src)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	copy(dst.Pix, src.Pix)
	radius := FisheyeRadius(w, h)
	cx, cy := float64(center.X), float64(center.Y)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= 0 || d >= radius {
				continue
			}
			factor := 1 + strength*(1-d/radius)
			srcX := int(cx + dx/factor)
			srcY := int(cy + dy/factor)
			if srcX >= 0 && srcX < w && srcY >= 0 && srcY < h {
				dst.Pix[y*dst.Stride+x] = src.Pix[srcY*src.Stride+srcX]
			}
		}
	}
	return dst
}

// Edge is the side of the image that Perspective pulls toward the viewer.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Edges lists every Edge.
var Edges = []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "unknown"
}

// Perspective fakes a perspective tilt by scaling each row (top, bottom) or
// column (left, right) about the image's midline. The scale runs linearly
// from 1+stretch at edge to 1 at the opposite side. Pixels whose source falls
// outside src are white.
func Perspective(src *image.Gray, stretch float64, edge Edge) *image.Gray {
	src = toGray(src)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	fw, fh := float64(w), float64(h)
	dst := blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcX, srcY := x, y
			switch edge {
			case EdgeTop, EdgeBottom:
				t := float64(y) / fh
				if edge == EdgeTop {
					t = 1 - t
				}
				f := 1 + stretch*t
				srcX = int(float64(x)/f + fw*(f-1)/(2*f))
			case EdgeLeft, EdgeRight:
				t := float64(x) / fw
				if edge == EdgeLeft {
					t = 1 - t
				}
				f := 1 + stretch*t
				srcY = int(float64(y)/f + fh*(f-1)/(2*f))
			}
			if srcX >= 0 && srcX < w && srcY >= 0 && srcY < h {
				dst.Pix[y*dst.Stride+x] = src.Pix[srcY*src.Stride+srcX]
			}
		}
	}
	return dst
}
