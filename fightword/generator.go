// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fightword renders comic book "fight words" such as "POW!" as
// rotated, distorted, dithered monochrome bitmaps for small displays.
//
// A word is drawn outlined on an oversized grayscale working canvas,
// rotated, distorted, cropped back to its content, scaled to the output size
// and dithered to one bit per pixel:
//
//	g := fightword.New(fightword.DefaultParams(), nil)
//	img := g.Generate("KAPOW!")
package fightword

import (
	"image"
	"math/rand"
	"time"

	"github.com/toothrot/fightwords/bitmap"
	"github.com/toothrot/fightwords/fonts"
)

const (
	DefaultWidth  = 128
	DefaultHeight = 64

	// workScale is the linear scale of the working canvas relative to the
	// output. Rendering large keeps distortions from aliasing.
	workScale = 4
	// outline is the glyph outline width at output scale.
	outline = 2
	// maxShrinks bounds how often an oversized font is shrunk by 15%.
	maxShrinks = 5
)

// Params configure a Generator.
type Params struct {
	// Width and Height of generated bitmaps.
	Width, Height int
	// Distortions applied after rotation.
	Distortions DistortionSet
	// Negate inverts every generated bitmap.
	Negate bool
	// Seed, when set, makes all random choices reproducible.
	Seed *int64
	// Fonts are font file paths or system family names. They are only used
	// when New is not given a Provider.
	Fonts []string
	// Starburst draws a gray burst behind each word.
	Starburst bool
}

// DefaultParams are 128x64 output with every distortion enabled.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Distortions: AllDistortions,
	}
}

// Generator renders words. It is not safe for concurrent use.
type Generator struct {
	p     Params
	fonts *fonts.Provider
	rand  *rand.Rand
}

// New creates a Generator. If fp is nil, a Provider for p.Fonts is created.
//
// Every random choice, including font selection, is drawn from one source
// seeded from p.Seed, so equal seeds and equal call sequences produce
// identical bitmaps.
func New(p Params, fp *fonts.Provider) *Generator {
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if fp == nil {
		fp = fonts.NewProvider(p.Fonts...)
	}
	seed := time.Now().UnixNano()
	if p.Seed != nil {
		seed = *p.Seed
	}
	return &Generator{
		p:     p,
		fonts: fp,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Params returns the parameters in use, with defaults applied.
func (g *Generator) Params() Params {
	return g.p
}

// Generate renders word as a Width x Height bitmap.
func (g *Generator) Generate(word string) *bitmap.Image {
	workW, workH := g.p.Width*workScale, g.p.Height*workScale

	img := g.layout(word, workW, workH)
	img = Rotate(img, uniform(g.rand, -15, 15))
	img = g.distort(img)
	img = Recrop(img, g.p.Width, g.p.Height)

	out := Dither(img)
	if g.p.Negate {
		out.Invert()
	}
	return out
}

// layout sizes word for the output and draws it on the working canvas.
func (g *Generator) layout(word string, workW, workH int) *image.Gray {
	size := SizeFor(g.rand, word, g.p.Width-20, g.p.Height-20)
	face := g.fonts.Face(g.rand, size*workScale)
	for i := 0; i < maxShrinks; i++ {
		ink, _ := Measure(face, word)
		if ink.X <= workW-10*workScale && ink.Y <= workH-10*workScale {
			break
		}
		size = int(float64(size) * 0.85)
		if size < 1 {
			break
		}
		face = g.fonts.Face(g.rand, size*workScale)
	}
	l := Layout{
		// Room for the output at working scale under any rotation.
		Canvas:       2 * max(workW, workH),
		TargetWidth:  workW,
		TargetHeight: workH,
		Outline:      outline * workScale,
		Starburst:    g.p.Starburst,
	}
	return l.Place(g.rand, face, word)
}

// distort applies the enabled distortions with random parameters.
func (g *Generator) distort(img *image.Gray) *image.Gray {
	if g.p.Distortions.Has(DistortShear) {
		sx := uniform(g.rand, -0.25, 0.25)
		sy := uniform(g.rand, -0.15, 0.15)
		img = Shear(img, sx, sy)
	}
	if g.p.Distortions.Has(DistortFisheye) {
		w, h := img.Rect.Dx(), img.Rect.Dy()
		c := image.Pt(w/2+randInt(g.rand, -w/6, w/6), h/2+randInt(g.rand, -h/6, h/6))
		strength := uniform(g.rand, 0.3, 0.9)
		img = Fisheye(img, c, strength)
	}
	if g.p.Distortions.Has(DistortPerspective) {
		stretch := uniform(g.rand, 0.05, 0.25)
		edge := Edges[g.rand.Intn(len(Edges))]
		img = Perspective(img, stretch, edge)
	}
	return img
}
