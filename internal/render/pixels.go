package render

import (
	"image/color"

	"github.com/pkg/errors"
)

// PixelSurface is an in-memory RGBA surface. Hosts upload Pix() to their
// display when TakeDirty reports a change.
type PixelSurface struct {
	w, h  int
	pix   []byte
	bg    color.RGBA
	dirty bool
}

// NewPixelSurface allocates a w*h surface cleared to bg.
func NewPixelSurface(w, h int, bg color.RGBA) *PixelSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &PixelSurface{w: w, h: h, pix: make([]byte, 4*w*h), bg: bg}
	s.Clear()
	return s
}

// Size returns the surface dimensions in pixels.
func (s *PixelSurface) Size() (int, int) { return s.w, s.h }

// Pix exposes the RGBA bytes in row-major order.
func (s *PixelSurface) Pix() []byte { return s.pix }

// Clear fills the whole surface with the background color.
func (s *PixelSurface) Clear() error {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = s.bg.R
		s.pix[i+1] = s.bg.G
		s.pix[i+2] = s.bg.B
		s.pix[i+3] = s.bg.A
	}
	s.dirty = true
	return nil
}

// FillRect paints the rectangle clipped to the surface.
func (s *PixelSurface) FillRect(x, y, w, h int, c color.RGBA) error {
	if w < 0 || h < 0 {
		return errors.Errorf("negative rect size %dx%d", w, h)
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.w), min(y+h, s.h)
	for py := y0; py < y1; py++ {
		base := (py*s.w + x0) * 4
		for px := x0; px < x1; px++ {
			s.pix[base+0] = c.R
			s.pix[base+1] = c.G
			s.pix[base+2] = c.B
			s.pix[base+3] = c.A
			base += 4
		}
	}
	if x0 < x1 && y0 < y1 {
		s.dirty = true
	}
	return nil
}

// At returns the color of the pixel at (x, y).
func (s *PixelSurface) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return color.RGBA{}
	}
	i := (y*s.w + x) * 4
	return color.RGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// TakeDirty reports whether the surface changed since the last call and
// resets the flag.
func (s *PixelSurface) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
