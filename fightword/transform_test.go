package fightword

import (
	"bytes"
	"image"
	"testing"
)

func filled(w, h int, v uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// gradient has no Background pixels.
func gradient(w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = uint8(i % 200)
	}
	return g
}

func TestRotate(t *testing.T) {
	src := gradient(60, 40)
	if got := Rotate(src, 0); !bytes.Equal(got.Pix, src.Pix) {
		t.Errorf("Rotate(src, 0) changed pixels")
	}

	black := filled(100, 100, 0)
	got := Rotate(black, 15)
	if got.Bounds() != black.Bounds() {
		t.Fatalf("Rotate(black, 15).Bounds() = %v, wanted %v", got.Bounds(), black.Bounds())
	}
	if v := got.GrayAt(50, 50).Y; v > 10 {
		t.Errorf("center = %d, wanted black", v)
	}
	for _, p := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if v := got.GrayAt(p.X, p.Y).Y; v < 245 {
			t.Errorf("corner %v = %d, wanted white", p, v)
		}
	}
}

func TestShear(t *testing.T) {
	src := filled(6, 6, Background)
	src.Pix[2*src.Stride+1] = 0

	if got := Shear(src, 0, 0); !bytes.Equal(got.Pix, src.Pix) {
		t.Errorf("Shear(src, 0, 0) changed pixels")
	}

	got := Shear(src, 0.5, 0)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := uint8(Background)
			if x == 2 && y == 2 {
				want = 0
			}
			if v := got.GrayAt(x, y).Y; v != want {
				t.Errorf("Shear(src, 0.5, 0) at (%d, %d) = %d, wanted %d", x, y, v, want)
			}
		}
	}
}

func TestShearOutOfBoundsIsBackground(t *testing.T) {
	got := Shear(filled(20, 20, 0), 0.25, 0.15)
	// Bottom left samples from x < 0.
	if v := got.GrayAt(0, 19).Y; v != Background {
		t.Errorf("Shear() at (0, 19) = %d, wanted %d", v, Background)
	}
	if v := got.GrayAt(10, 10).Y; v != 0 {
		t.Errorf("Shear() at (10, 10) = %d, wanted 0", v)
	}
}

func TestFisheye(t *testing.T) {
	cases := []struct {
		desc     string
		w, h     int
		center   image.Point
		strength float64
	}{
		{desc: "centered", w: 100, h: 100, center: image.Pt(50, 50), strength: 0.9},
		{desc: "off center", w: 120, h: 60, center: image.Pt(70, 20), strength: 0.3},
		{desc: "weak", w: 33, h: 17, center: image.Pt(16, 8), strength: 0.5},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			src := gradient(c.w, c.h)
			got := Fisheye(src, c.center, c.strength)
			if got.Bounds() != src.Bounds() {
				t.Fatalf("Fisheye().Bounds() = %v, wanted %v", got.Bounds(), src.Bounds())
			}
			for i, v := range got.Pix {
				if v == Background {
					t.Fatalf("Fisheye() opened a hole at pixel %d", i)
				}
			}
			if a, b := got.GrayAt(c.center.X, c.center.Y), src.GrayAt(c.center.X, c.center.Y); a != b {
				t.Errorf("center pixel = %v, wanted %v", a, b)
			}
		})
	}
}

func TestFisheyeOutsideRadius(t *testing.T) {
	src := gradient(100, 100)
	got := Fisheye(src, image.Pt(50, 50), 0.9)
	// These corners lie just outside the 70px radius.
	for _, p := range []image.Point{{0, 0}, {99, 0}, {0, 99}} {
		if a, b := got.GrayAt(p.X, p.Y), src.GrayAt(p.X, p.Y); a != b {
			t.Errorf("corner %v = %v, wanted %v", p, a, b)
		}
	}
}

func TestFisheyeUniform(t *testing.T) {
	got := Fisheye(filled(64, 64, 0), image.Pt(10, 60), 0.9)
	for i, v := range got.Pix {
		if v != 0 {
			t.Fatalf("Fisheye(black) pixel %d = %d, wanted 0", i, v)
		}
	}
}

func TestPerspective(t *testing.T) {
	for _, e := range Edges {
		t.Run(e.String(), func(t *testing.T) {
			src := gradient(40, 30)
			if got := Perspective(src, 0, e); !bytes.Equal(got.Pix, src.Pix) {
				t.Errorf("Perspective(src, 0, %v) changed pixels", e)
			}
			got := Perspective(filled(40, 30, 100), 0.25, e)
			for i, v := range got.Pix {
				if v != 100 {
					t.Fatalf("Perspective(uniform, 0.25, %v) pixel %d = %d, wanted 100", e, i, v)
				}
			}
		})
	}
}

func TestPerspectiveKeepsMidline(t *testing.T) {
	src := filled(41, 20, Background)
	for y := 0; y < 20; y++ {
		src.Pix[y*src.Stride+20] = 0
	}
	got := Perspective(src, 0.25, EdgeTop)
	for y := 0; y < 20; y++ {
		if v := got.GrayAt(20, y).Y; v != 0 {
			t.Errorf("midline at row %d = %d, wanted 0", y, v)
		}
	}
	// The top row is magnified the most: its leftmost pixel samples inward.
	if v := got.GrayAt(0, 0).Y; v != Background {
		t.Errorf("top left = %d, wanted %d", v, Background)
	}
}
