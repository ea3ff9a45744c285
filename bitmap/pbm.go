// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitmap

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
)

const pbmMagic = "P4"

var ErrFormat = errors.New("bitmap: not a PBM P4 file")

func init() {
	image.RegisterFormat("pbm", pbmMagic, func(r io.Reader) (image.Image, error) {
		img, err := Decode(r)
		if err != nil {
			return nil, err
		}
		return img, nil
	}, DecodeConfig)
}

// Encode writes img as a binary PBM (P4) file.
func Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", pbmMagic, img.Rect.Dx(), img.Rect.Dy()); err != nil {
		return err
	}
	if _, err := bw.Write(img.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

// readHeader reads the magic line, any comment lines and the dimensions line.
func readHeader(br *bufio.Reader) (width, height int, err error) {
	magic, err := br.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("reading magic: %w", err)
	}
	if strings.TrimSpace(magic) != pbmMagic {
		return 0, 0, ErrFormat
	}
	var line string
	for {
		line, err = br.ReadString('\n')
		if err != nil {
			return 0, 0, fmt.Errorf("reading header: %w", err)
		}
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			break
		}
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("bitmap: malformed dimensions %q", line)
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bitmap: width %q: %w", fields[0], err)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bitmap: height %q: %w", fields[1], err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("bitmap: invalid dimensions %dx%d", width, height)
	}
	return width, height, nil
}

// Decode reads a binary PBM (P4) file.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	w, h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	img := NewImage(image.Rect(0, 0, w, h))
	if _, err := io.ReadFull(br, img.Pix); err != nil {
		return nil, fmt.Errorf("reading %dx%d pixels: %w", w, h, err)
	}
	return img, nil
}

// DecodeConfig returns the dimensions of a PBM (P4) file without reading
// the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	w, h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: Model, Width: w, Height: h}, nil
}

// Marshal returns img encoded as PBM.
func Marshal(img *Image) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail.
	Encode(&buf, img)
	return buf.Bytes()
}
