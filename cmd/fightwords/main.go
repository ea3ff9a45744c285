// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary fightwords renders each word of a word list as a stylized
// monochrome bitmap.
//
//	fightwords -output out -font "DejaVu Sans,Impact" -seed 1 words.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/toothrot/fightwords/bitmap"
	"github.com/toothrot/fightwords/fightword"
)

var (
	output     = flag.String("output", "output", "Directory to write bitmaps to.")
	fontList   = flag.String("font", "", "Comma separated font files or family names.")
	distortion = flag.String("distortion", fightword.AllDistortions.String(), "Comma separated distortions to apply: "+strings.Join(fightword.ValidDistortions(), ", ")+".")
	negate     = flag.Bool("negate", false, "Invert the output bitmaps.")
	width      = flag.Int("width", fightword.DefaultWidth, "Output width in pixels.")
	height     = flag.Int("height", fightword.DefaultHeight, "Output height in pixels.")
	seed       = flag.Int64("seed", 0, "Random seed. Unset means a different result every run.")
	format     = flag.String("format", "png", "Output format: png, bmp or pbm.")
	starburst  = flag.Bool("starburst", false, "Draw a burst behind each word.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [words.txt]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	input := "words.txt"
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}
	f, err := os.Open(input)
	if err != nil {
		log.Fatalf("Input file not found: %v", err)
	}
	words, err := fightword.ReadWords(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	ds, err := fightword.ParseDistortions(*distortion)
	if err != nil {
		log.Fatal(err)
	}
	ext, err := extension(*format)
	if err != nil {
		log.Fatal(err)
	}

	p := fightword.DefaultParams()
	p.Width, p.Height = *width, *height
	p.Distortions = ds
	p.Negate = *negate
	p.Starburst = *starburst
	p.Fonts = splitList(*fontList)
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			p.Seed = seed
		}
	})

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("os.MkdirAll(%q) = %v", *output, err)
	}

	defer func(start time.Time) {
		log.Printf("Done! Generated %d fight words in %s", len(words), time.Since(start).Round(time.Millisecond))
	}(time.Now())
	g := fightword.New(p, nil)
	for i, w := range words {
		log.Printf("Generating %s...", w)
		path := filepath.Join(*output, fightword.Filename(w, i, ext))
		if err := save(path, g.Generate(w)); err != nil {
			log.Fatal(err)
		}
	}
}

// extension returns the file extension for an output format.
func extension(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png", "bmp", "pbm":
		return "." + strings.ToLower(format), nil
	}
	return "", fmt.Errorf("invalid format %q (valid options: png, bmp, pbm)", format)
}

// save writes img to path in the format named by its extension.
func save(path string, img *bitmap.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == ".pbm" {
		err = bitmap.Encode(f, img)
	} else {
		var ff imaging.Format
		ff, err = imaging.FormatFromFilename(path)
		if err == nil {
			err = imaging.Encode(f, img.Paletted(), ff)
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
