package led

import (
	"math"
	"testing"
)

func TestFramebufferBegin(t *testing.T) {
	fb := NewFramebuffer(0, 0)
	if fb.Begin() {
		t.Error("Begin on an empty framebuffer should report false")
	}

	fb.Resize(4, 3)
	fb.Pix[0] = 200
	if !fb.Begin() {
		t.Fatal("Begin should report true once allocated")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if r, g, b, a := fb.At(x, y); r != 0 || g != 0 || b != 0 || a != 255 {
				t.Fatalf("pixel (%d, %d) = %d %d %d %d, want opaque black", x, y, r, g, b, a)
			}
		}
	}
}

func TestFramebufferFillRect(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Begin()
	fb.FillRect(1, 2, 3, 2, Color{R: 1, G: 1, B: 1, A: 1})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, _, _, _ := fb.At(x, y)
			inside := x >= 1 && x < 4 && y >= 2 && y < 4
			if inside && r != 255 {
				t.Errorf("pixel (%d, %d) = %d, want 255", x, y, r)
			}
			if !inside && r != 0 {
				t.Errorf("pixel (%d, %d) = %d, want 0", x, y, r)
			}
		}
	}
}

func TestFramebufferBlendsAlpha(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Begin()
	fb.FillRect(0, 0, 1, 1, Color{R: 1, A: 0.5})
	if r, g, _, a := fb.At(0, 0); r != 128 || g != 0 || a != 255 {
		t.Errorf("half red over black = %d %d a=%d, want 128 0 a=255", r, g, a)
	}
	fb.FillRect(0, 0, 1, 1, Color{G: 1, A: 0.5})
	if r, g, _, _ := fb.At(0, 0); r != 64 || g != 128 {
		t.Errorf("half green over half red = %d %d, want 64 128", r, g)
	}
}

func TestFramebufferClipsOutside(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Begin()
	fb.FillRect(-10, -10, 12, 12, Color{B: 1, A: 1})
	fb.FillRect(3, 3, 100, 100, Color{B: 1, A: 1})
	fb.Glow(-20, 10, 5, 5, 9, Color{B: 1, A: 1})

	if _, _, b, _ := fb.At(1, 1); b != 255 {
		t.Errorf("clipped rect missed (1, 1): %d", b)
	}
	if _, _, b, _ := fb.At(3, 3); b != 255 {
		t.Errorf("clipped rect missed (3, 3): %d", b)
	}
	if _, _, b, _ := fb.At(2, 2); b != 0 {
		t.Errorf("pixel (2, 2) painted: %d", b)
	}
}

func TestFramebufferGlowFalloff(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	fb.Begin()
	fb.Glow(17.5, 17.5, 5, 5, 8, Color{R: 1, A: 1})

	inside, _, _, _ := fb.At(19, 19)
	near, _, _, _ := fb.At(24, 19)
	mid, _, _, _ := fb.At(27, 19)
	far, _, _, _ := fb.At(35, 19)
	if inside != 255 {
		t.Errorf("glow inside rect = %d, want 255", inside)
	}
	if !(near > mid && mid > 0) {
		t.Errorf("glow does not fall off: near %d mid %d", near, mid)
	}
	if far != 0 {
		t.Errorf("glow reached beyond its blur radius: %d", far)
	}

	fb.Begin()
	fb.Glow(17.5, 17.5, 5, 5, 0, Color{R: 1, A: 1})
	if r, _, _, _ := fb.At(19, 19); r != 0 {
		t.Errorf("zero blur glow painted %d", r)
	}
}

func TestHSLA(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{"red", 0, 100, 50, Color{R: 1, A: 1}},
		{"green", 120, 100, 50, Color{G: 1, A: 1}},
		{"blue", 240, 100, 50, Color{B: 1, A: 1}},
		{"white", 77, 30, 100, Color{R: 1, G: 1, B: 1, A: 1}},
		{"black", 300, 80, 0, Color{A: 1}},
	}
	for _, tt := range tests {
		got := HSLA(tt.h, tt.s, tt.l, 1)
		if math.Abs(got.R-tt.want.R) > 1e-6 || math.Abs(got.G-tt.want.G) > 1e-6 || math.Abs(got.B-tt.want.B) > 1e-6 {
			t.Errorf("%s: HSLA(%v, %v, %v) = %+v, want %+v", tt.name, tt.h, tt.s, tt.l, got, tt.want)
		}
	}
	if c := HSLA(0, 100, 50, 3); c.A != 1 {
		t.Errorf("alpha not clamped: %f", c.A)
	}
}

func TestCellColorRamp(t *testing.T) {
	dim := cellColor(30, 0.1)
	bright := cellColor(30, 0.9)
	if dim.A >= bright.A {
		t.Errorf("alpha should grow with intensity: %f vs %f", dim.A, bright.A)
	}
	lum := func(c Color) float64 { return c.R + c.G + c.B }
	if lum(dim) >= lum(bright) {
		t.Errorf("lightness should grow with intensity")
	}
}
