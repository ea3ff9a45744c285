// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary fwslideshow cycles through PBM fight words on an SSD1306 display.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/toothrot/fightwords/bitmap"
	"github.com/toothrot/fightwords/devices/ssd1306"
)

var (
	dir      = flag.String("dir", "output", "Directory of .pbm files to show.")
	interval = flag.Duration("interval", 2*time.Second, "Time each image is shown.")
	bus      = flag.String("bus", "", "I2C bus name. Empty selects the first bus.")
	addr     = flag.Uint("addr", uint(ssd1306.DefaultOpts.Addr), "I2C device address.")
	rst      = flag.String("rst", "", "Optional reset pin name.")
	invert   = flag.Bool("invert", false, "Invert the display in hardware.")
)

func main() {
	flag.Parse()
	files, err := filepath.Glob(filepath.Join(*dir, "*.pbm"))
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("No .pbm files found in %q", *dir)
	}
	log.Printf("Found %d images", len(files))

	d, err := ssd1306.New(ssd1306.Opts{Bus: *bus, Addr: uint16(*addr), RST: *rst})
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	log.Println("Initializing")
	if err := d.Init(); err != nil {
		log.Fatal(err)
	}
	if err := d.Invert(*invert); err != nil {
		log.Fatal(err)
	}
	log.Println("Clearing")
	if err := d.Clear(); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	show(d, files[r.Intn(len(files))])
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case s := <-c:
			log.Printf("Got signal %q, quitting", s.String())
			if err := d.Clear(); err != nil {
				log.Print(err)
			}
			return
		case <-ticker.C:
			show(d, files[r.Intn(len(files))])
		}
	}
}

// show draws one PBM file. Errors are logged so a bad file does not stop
// the slideshow.
func show(d *ssd1306.Display, path string) {
	img, err := load(path)
	if err != nil {
		log.Print(err)
		return
	}
	if err := d.DrawAndRefresh(img); err != nil {
		log.Print(err)
	}
}

func load(path string) (*bitmap.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := bitmap.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("bitmap.Decode(%q) = _, %w", path, err)
	}
	return img, nil
}
