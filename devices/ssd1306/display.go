// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ssd1306 is for 128x64 SSD1306 OLED modules on an I2C bus.
package ssd1306

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"periph.io/x/periph/conn"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

const (
	// Device width in pixels.
	DisplayWidth = 128
	// Device height in pixels.
	DisplayHeight = 64
	// Pages are horizontal strips of 8 rows.
	Pages = DisplayHeight / 8
	// Full buffer size in bytes.
	BufSize = DisplayWidth * Pages
)

var DisplayBounds = image.Rect(0, 0, DisplayWidth, DisplayHeight)

// Display is a client for the OLED display.
//
// Standard wiring on a Raspberry Pi is:
//
//	SDA - I2C1 SDA - Pin 3 (GPIO 2)
//	SCL - I2C1 SCL - Pin 5 (GPIO 3)
type Display struct {
	hw     *hardware
	buffer []byte
	bus    io.Closer
}

type Opts struct {
	// Bus is an i2creg.Open() name. Empty selects the first bus.
	Bus string
	// Addr is the device address, typically 0x3C.
	Addr uint16
	// RST is an optional reset pin name, such as "P1_11".
	RST string
}

var DefaultOpts = Opts{
	Addr: 0x3C,
}

// New opens the I2C bus and creates a Display. Call Init before drawing.
//
//	d, err := ssd1306.New(ssd1306.DefaultOpts)
//	if err != nil {
//	  // Handle error.
//	}
//	defer d.Close()
func New(o Opts) (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host.Init() = %w", err)
	}
	var rst gpio.PinOut
	if o.RST != "" {
		p := gpioreg.ByName(o.RST)
		if p == nil {
			return nil, fmt.Errorf("invalid rst pin %q", o.RST)
		}
		if err := p.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("rst.Out(%v) = %w", gpio.High, err)
		}
		rst = p
	}
	bus, err := i2creg.Open(o.Bus)
	if err != nil {
		return nil, fmt.Errorf("i2creg.Open(%q) = _, %w", o.Bus, err)
	}
	d := NewConn(&i2c.Dev{Bus: bus, Addr: o.Addr}, rst)
	d.bus = bus
	return d, nil
}

// NewConn creates a Display talking over c. rst may be nil.
func NewConn(c conn.Conn, rst gpio.PinOut) *Display {
	return &Display{
		hw: &hardware{
			txLimit: 256,
			c:       c,
			rst:     rst,
		},
		buffer: make([]byte, BufSize),
	}
}

// Reset pulses the reset pin, if there is one.
func (d *Display) Reset() {
	if d.hw.rst == nil {
		return
	}
	d.hw.rst.Out(gpio.High)
	time.Sleep(time.Millisecond)
	d.hw.rst.Out(gpio.Low)
	time.Sleep(10 * time.Millisecond)
	d.hw.rst.Out(gpio.High)
	time.Sleep(10 * time.Millisecond)
}

func (d *Display) sendCommand(cmd command, data ...byte) error {
	_, err := d.hw.CommandWriter().Write(append([]byte{byte(cmd)}, data...))
	return err
}

// Init configures the controller for a 128x64 panel with the charge pump
// enabled, horizontal addressing, and turns the display on.
func (d *Display) Init() error {
	d.Reset()
	cmds := []struct {
		cmd  command
		data []byte
	}{
		{displayOff, nil},
		{setDisplayClockDiv, []byte{0x80}},
		{setMultiplex, []byte{DisplayHeight - 1}},
		{setDisplayOffset, []byte{0x00}},
		{setStartLine, nil},
		{chargePump, []byte{0x14}},
		// Horizontal addressing: pages wrap into the next page.
		{memoryMode, []byte{0x00}},
		{segRemap, nil},
		{comScanDec, nil},
		{setComPins, []byte{0x12}},
		{setContrast, []byte{0xCF}},
		{setPrecharge, []byte{0xF1}},
		{setVcomDetect, []byte{0x40}},
		{deactivateScroll, nil},
		{entireDisplayResume, nil},
		{normalDisplay, nil},
		{displayOn, nil},
	}
	for _, c := range cmds {
		if err := d.sendCommand(c.cmd, c.data...); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the buffer and the screen.
func (d *Display) Clear() error {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	return d.Refresh()
}

// Draw draws img into the display buffer. Black pixels light up, as when a
// PBM file is copied to the display unchanged.
func (d *Display) Draw(img image.Image) {
	pack(d.buffer, img)
}

// Refresh uploads the buffer to the display.
func (d *Display) Refresh() error {
	defer func(start time.Time) {
		if t := time.Since(start); t > 100*time.Millisecond {
			log.Printf("Refresh: %s", t.String())
		}
	}(time.Now())
	if err := d.sendCommand(columnAddr, 0, DisplayWidth-1); err != nil {
		return err
	}
	if err := d.sendCommand(pageAddr, 0, Pages-1); err != nil {
		return err
	}
	if n, err := d.hw.DataWriter().Write(d.buffer); err != nil {
		return fmt.Errorf("refresh wrote %d of %d bytes: %w", n, len(d.buffer), err)
	}
	return nil
}

// DrawAndRefresh is a convenience method for Draw and Refresh.
func (d *Display) DrawAndRefresh(img image.Image) error {
	d.Draw(img)
	return d.Refresh()
}

// Invert toggles hardware inversion of the whole screen.
func (d *Display) Invert(on bool) error {
	if on {
		return d.sendCommand(invertDisplay)
	}
	return d.sendCommand(normalDisplay)
}

// Sleep turns the panel off. The buffer in the controller is kept; Init
// turns it back on.
func (d *Display) Sleep() error {
	return d.sendCommand(displayOff)
}

// Close puts the display to sleep and closes the bus opened by New.
func (d *Display) Close() error {
	err := d.Sleep()
	if d.bus != nil {
		if cerr := d.bus.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
