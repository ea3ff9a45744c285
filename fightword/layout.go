// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fightword

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	minFontSize = 12
	maxFontSize = 64
)

// SizeFor picks a font size that roughly fills a maxWidth x maxHeight box
// with text. Shorter words get proportionally larger type. The result is
// jittered by up to 20% using r and always lies in [12, 64].
func SizeFor(r *rand.Rand, text string, maxWidth, maxHeight int) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		n = 1
	}
	perChar := float64(maxWidth / n)
	mh := float64(maxHeight)
	var base float64
	switch {
	case n <= 4:
		base = math.Min(perChar*3, mh*0.7)
	case n <= 7:
		base = math.Min(perChar*2.5, mh*0.6)
	default:
		base = math.Min(perChar*2, mh*0.5)
	}
	base = math.Max(minFontSize, math.Min(base, maxFontSize))
	size := int(base * uniform(r, 0.8, 1.2))
	return clamp(size, minFontSize, maxFontSize)
}

// Measure returns the size of the ink bounds of text drawn with face, and
// the offset of the bounds' top left corner from the drawing origin.
func Measure(face font.Face, text string) (size, offset image.Point) {
	b, _ := font.BoundString(face, text)
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	maxX, maxY := b.Max.X.Ceil(), b.Max.Y.Ceil()
	if maxX < minX || maxY < minY {
		return image.Point{}, image.Point{}
	}
	return image.Pt(maxX-minX, maxY-minY), image.Pt(minX, minY)
}

// Layout places a word on a square working canvas.
type Layout struct {
	// Canvas is the side of the working canvas.
	Canvas int
	// TargetWidth and TargetHeight bound the random offset from center.
	TargetWidth, TargetHeight int
	// Outline is the width of the black outline around the white glyphs.
	Outline int
	// Starburst draws a gray burst behind the word.
	Starburst bool
}

// Place draws text centered on a white canvas, nudged by a random offset of
// at most a third of the slack between the text and the target box. The
// text is white with a black outline.
func (l Layout) Place(r *rand.Rand, face font.Face, text string) *image.Gray {
	ctx := gg.NewContextForImage(imaging.New(l.Canvas, l.Canvas, color.White))
	if l.Starburst {
		c := float64(l.Canvas) / 2
		starburst(r, ctx, c, c, float64(l.Canvas)/16, float64(l.Canvas)/4)
	}

	size, off := Measure(face, text)
	x := (l.Canvas-size.X)/2 + jitter(r, (l.TargetWidth-size.X)/3)
	y := (l.Canvas-size.Y)/2 + jitter(r, (l.TargetHeight-size.Y)/3)
	// Move the ink box, not the origin, to (x, y).
	ox, oy := x-off.X, y-off.Y

	ctx.SetFontFace(face)
	ctx.SetColor(color.Black)
	for dx := -l.Outline; dx <= l.Outline; dx++ {
		for dy := -l.Outline; dy <= l.Outline; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ctx.DrawString(text, float64(ox+dx), float64(oy+dy))
		}
	}
	ctx.SetColor(color.White)
	ctx.DrawString(text, float64(ox), float64(oy))
	return toGray(ctx.Image())
}

// starburst draws 12 to 20 irregular gray spikes around (cx, cy).
func starburst(r *rand.Rand, ctx *gg.Context, cx, cy, inner, outer float64) {
	points := randInt(r, 12, 20)
	step := 2 * math.Pi / float64(points)
	for i := 0; i < points; i++ {
		a := float64(i)*step + uniform(r, -0.1, 0.1)
		ov := uniform(r, 0.7, 1.3)
		iv := uniform(r, 0.6, 1.2)
		gray := randInt(r, 160, 200)

		ctx.MoveTo(cx, cy)
		ctx.LineTo(cx+outer*ov*math.Cos(a), cy+outer*ov*math.Sin(a))
		ctx.LineTo(cx+inner*iv*math.Cos(a+step/2), cy+inner*iv*math.Sin(a+step/2))
		ctx.ClosePath()
		ctx.SetColor(color.Gray{Y: uint8(gray)})
		ctx.Fill()
	}
}

// jitter returns a uniform integer in [-bound, bound], or 0 if bound <= 0.
func jitter(r *rand.Rand, bound int) int {
	if bound <= 0 {
		return 0
	}
	return randInt(r, -bound, bound)
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// randInt returns a uniform integer in [lo, hi].
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
