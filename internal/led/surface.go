package led

import "math"

// Surface is the drawable target the animator paints into.
type Surface interface {
	// Resize reallocates the surface for a new viewport.
	Resize(width, height int)
	// Size reports the surface size in pixels.
	Size() (width, height int)
	// Begin clears to black and reports whether anything can be drawn.
	Begin() bool
	FillRect(x, y, w, h float64, c Color)
	// Glow paints a blurred halo around the rectangle.
	Glow(x, y, w, h, blur float64, c Color)
}

// Framebuffer is an RGBA8 surface composited in software. Pix is laid out
// row-major, four bytes per pixel, ready for an image upload.
type Framebuffer struct {
	width, height int
	Pix           []byte
}

// NewFramebuffer allocates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{}
	f.Resize(width, height)
	return f
}

// Resize reallocates the pixel buffer when the size changes.
func (f *Framebuffer) Resize(width, height int) {
	if f == nil {
		return
	}
	if width <= 0 || height <= 0 {
		f.width, f.height, f.Pix = 0, 0, nil
		return
	}
	if width == f.width && height == f.height && len(f.Pix) == width*height*4 {
		return
	}
	f.width, f.height = width, height
	f.Pix = make([]byte, width*height*4)
}

// Size reports the buffer dimensions in pixels.
func (f *Framebuffer) Size() (int, int) {
	if f == nil {
		return 0, 0
	}
	return f.width, f.height
}

// Begin clears the buffer to opaque black. It reports false when there is
// nothing to draw into.
func (f *Framebuffer) Begin() bool {
	if f == nil || len(f.Pix) == 0 {
		return false
	}
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = 0
		f.Pix[i+1] = 0
		f.Pix[i+2] = 0
		f.Pix[i+3] = 255
	}
	return true
}

// At returns the pixel at (x, y) as r, g, b, a bytes.
func (f *Framebuffer) At(x, y int) (r, g, b, a byte) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0, 0
	}
	base := (y*f.width + x) * 4
	return f.Pix[base], f.Pix[base+1], f.Pix[base+2], f.Pix[base+3]
}

// FillRect blends c over the pixels covered by the rectangle.
func (f *Framebuffer) FillRect(x, y, w, h float64, c Color) {
	if c.A <= 0 {
		return
	}
	x0, y0, x1, y1 := f.clip(x, y, x+w, y+h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.blend((py*f.width+px)*4, c, c.A)
		}
	}
}

// Glow paints a Gaussian halo of radius blur around the rectangle.
func (f *Framebuffer) Glow(x, y, w, h, blur float64, c Color) {
	if blur <= 0 || c.A <= 0 {
		return
	}
	sigma := blur / 2
	inv := 1 / (2 * sigma * sigma)
	rx1, ry1 := x+w, y+h
	x0, y0, x1, y1 := f.clip(x-blur, y-blur, rx1+blur, ry1+blur)
	for py := y0; py < y1; py++ {
		cy := float64(py) + 0.5
		dy := math.Max(math.Max(y-cy, cy-ry1), 0)
		for px := x0; px < x1; px++ {
			cx := float64(px) + 0.5
			dx := math.Max(math.Max(x-cx, cx-rx1), 0)
			d2 := dx*dx + dy*dy
			if d2 > blur*blur {
				continue
			}
			f.blend((py*f.width+px)*4, c, c.A*math.Exp(-d2*inv))
		}
	}
}

// clip converts a float rectangle into pixel bounds inside the buffer.
func (f *Framebuffer) clip(x0, y0, x1, y1 float64) (int, int, int, int) {
	ix0 := clampInt(int(math.Floor(x0)), 0, f.width)
	iy0 := clampInt(int(math.Floor(y0)), 0, f.height)
	ix1 := clampInt(int(math.Floor(x1)), 0, f.width)
	iy1 := clampInt(int(math.Floor(y1)), 0, f.height)
	return ix0, iy0, ix1, iy1
}

// blend composites c over the pixel at base with source-over at alpha a.
func (f *Framebuffer) blend(base int, c Color, a float64) {
	if a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	keep := 1 - a
	f.Pix[base] = uint8(c.R*255*a + float64(f.Pix[base])*keep + 0.5)
	f.Pix[base+1] = uint8(c.G*255*a + float64(f.Pix[base+1])*keep + 0.5)
	f.Pix[base+2] = uint8(c.B*255*a + float64(f.Pix[base+2])*keep + 0.5)
	f.Pix[base+3] = 255
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
