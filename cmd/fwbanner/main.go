// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary fwbanner renders one fight word and shows it on an SSD1306 display.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/toothrot/fightwords/devices/ssd1306"
	"github.com/toothrot/fightwords/fightword"
)

var (
	text       = flag.String("text", "POW!", "Word to display.")
	fontList   = flag.String("font", "", "Comma separated font files or family names.")
	distortion = flag.String("distortion", fightword.AllDistortions.String(), "Comma separated distortions to apply.")
	negate     = flag.Bool("negate", false, "Invert the bitmap.")
	seed       = flag.Int64("seed", 0, "Random seed. Unset means a different result every run.")
	hold       = flag.Duration("hold", 10*time.Second, "Time to show the word before clearing. Zero leaves it on screen.")
	bus        = flag.String("bus", "", "I2C bus name. Empty selects the first bus.")
	addr       = flag.Uint("addr", uint(ssd1306.DefaultOpts.Addr), "I2C device address.")
)

func main() {
	flag.Parse()
	ds, err := fightword.ParseDistortions(*distortion)
	if err != nil {
		log.Fatal(err)
	}
	p := fightword.DefaultParams()
	p.Width, p.Height = ssd1306.DisplayWidth, ssd1306.DisplayHeight
	p.Distortions = ds
	p.Negate = *negate
	for _, f := range strings.Split(*fontList, ",") {
		if f = strings.TrimSpace(f); f != "" {
			p.Fonts = append(p.Fonts, f)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			p.Seed = seed
		}
	})
	log.Printf("Generating %s...", *text)
	img := fightword.New(p, nil).Generate(*text)

	d, err := ssd1306.New(ssd1306.Opts{Bus: *bus, Addr: uint16(*addr)})
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Initializing")
	if err := d.Init(); err != nil {
		log.Fatal(err)
	}
	if err := d.DrawAndRefresh(img); err != nil {
		log.Fatal(err)
	}
	if *hold == 0 {
		return
	}
	log.Printf("Waiting %vs", hold.Seconds())
	time.Sleep(*hold)
	if err := d.Clear(); err != nil {
		log.Print(err)
	}
	d.Close()
}
