package fightword

import (
	"image"
	"math/rand"
	"testing"

	"github.com/toothrot/fightwords/fonts"
)

func TestSizeFor(t *testing.T) {
	cases := []struct {
		desc     string
		text     string
		w, h     int
		min, max int
	}{
		// min(27*3, 44*0.7) = 30.8, jittered by 20%.
		{desc: "short", text: "POW!", w: 108, h: 44, min: 24, max: 36},
		// min(18*2.5, 44*0.6) = 26.4.
		{desc: "medium", text: "KAPOW!", w: 108, h: 44, min: 21, max: 31},
		// min(12*2, 44*0.5) = 22.
		{desc: "long", text: "AWKKKKKK!", w: 108, h: 44, min: 17, max: 26},
		{desc: "tiny box", text: "BAM", w: 2, h: 2, min: 12, max: 14},
		{desc: "huge box", text: "ZAP", w: 4000, h: 4000, min: 51, max: 64},
		{desc: "empty", text: "", w: 108, h: 44, min: 24, max: 36},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			r := rand.New(rand.NewSource(3))
			for i := 0; i < 200; i++ {
				got := SizeFor(r, c.text, c.w, c.h)
				if got < c.min || got > c.max {
					t.Fatalf("SizeFor(%q, %d, %d) = %d, wanted in [%d, %d]", c.text, c.w, c.h, got, c.min, c.max)
				}
			}
		})
	}
}

func TestSizeForVaries(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		seen[SizeFor(r, "POW!", 108, 44)] = true
	}
	if len(seen) < 2 {
		t.Errorf("SizeFor() returned %d distinct sizes over 50 calls, wanted variation", len(seen))
	}
}

func TestPlace(t *testing.T) {
	p := fonts.NewProvider()
	r := rand.New(rand.NewSource(1))
	face := p.Face(r, 64)
	size, _ := Measure(face, "POW!")
	if size.X <= 0 || size.Y <= 0 {
		t.Fatalf("Measure(face, %q) = %v, wanted a positive size", "POW!", size)
	}

	cases := []struct {
		desc      string
		starburst bool
	}{
		{desc: "plain"},
		{desc: "starburst", starburst: true},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			l := Layout{Canvas: 512, TargetWidth: 256, TargetHeight: 128, Outline: 4, Starburst: c.starburst}
			img := l.Place(r, face, "POW!")
			if img.Bounds() != image.Rect(0, 0, 512, 512) {
				t.Fatalf("Place().Bounds() = %v, wanted 512x512", img.Bounds())
			}
			var black, white int
			for _, v := range img.Pix {
				switch v {
				case 0:
					black++
				case 255:
					white++
				}
			}
			if black == 0 || white == 0 {
				t.Errorf("Place() has %d black and %d white pixels, wanted both", black, white)
			}
			if c.starburst {
				return
			}
			box := ContentBounds(img)
			// The outline grows the ink box by at most Outline+1 per side.
			slackX, slackY := (256-size.X)/3+l.Outline+1, (128-size.Y)/3+l.Outline+1
			center := image.Pt(256, 256)
			mid := image.Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2)
			if d := mid.Sub(center); abs(d.X) > slackX+1 || abs(d.Y) > slackY+1 {
				t.Errorf("Place() content centered at %v, wanted within (%d, %d) of %v", mid, slackX, slackY, center)
			}
		})
	}
}

func TestJitter(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for _, bound := range []int{-5, 0} {
		if got := jitter(r, bound); got != 0 {
			t.Errorf("jitter(r, %d) = %d, wanted 0", bound, got)
		}
	}
	for i := 0; i < 100; i++ {
		if got := jitter(r, 3); got < -3 || got > 3 {
			t.Fatalf("jitter(r, 3) = %d, wanted in [-3, 3]", got)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
