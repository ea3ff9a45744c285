package ssd1306

import (
	"image"
	"image/color"
	"testing"

	"github.com/toothrot/fightwords/bitmap"
)

func TestPack(t *testing.T) {
	cases := []struct {
		desc   string
		pixels []image.Point
		want   map[int]byte
	}{
		{
			desc:   "top left",
			pixels: []image.Point{{0, 0}},
			want:   map[int]byte{0: 0b0000_0001},
		},
		{
			desc:   "column",
			pixels: []image.Point{{1, 0}, {1, 7}, {1, 9}},
			want:   map[int]byte{1: 0b1000_0001, DisplayWidth + 1: 0b0000_0010},
		},
		{
			desc:   "last page",
			pixels: []image.Point{{5, 56}, {5, 63}},
			want:   map[int]byte{7*DisplayWidth + 5: 0b1000_0001},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			img := image.NewGray(DisplayBounds)
			for i := range img.Pix {
				img.Pix[i] = 0xff
			}
			for _, p := range c.pixels {
				img.SetGray(p.X, p.Y, color.Gray{})
			}
			got := Pack(img)
			for i, b := range got {
				if b != c.want[i] {
					t.Errorf("Pack()[%d] = %08b, wanted %08b", i, b, c.want[i])
				}
			}
		})
	}
}

func TestPackSmallImage(t *testing.T) {
	img := bitmap.NewImage(image.Rect(10, 10, 14, 12))
	img.Set(10, 10, color.Black)
	got := Pack(img)
	if got[0] != 0x01 {
		t.Errorf("Pack()[0] = %#x, wanted 0x01", got[0])
	}
	var n int
	for _, b := range got {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	if n != 1 {
		t.Errorf("Pack() lit %d pixels, wanted 1", n)
	}
}

func BenchmarkPack(b *testing.B) {
	img := bitmap.NewImage(DisplayBounds)
	buf := make([]byte, BufSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pack(buf, img)
	}
}
