package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"lifegrid/internal/render"
)

// ErrOffscreen reports a rectangle that starts outside the terminal.
var ErrOffscreen = errors.New("rect outside terminal")

// Surface draws pixel rectangles onto a tcell screen. Each character cell
// stands for a charW*charH block of pixels.
type Surface struct {
	screen       tcell.Screen
	charW, charH int
}

// NewSurface wraps screen with the given character geometry.
func NewSurface(screen tcell.Screen, charW, charH int) *Surface {
	return &Surface{screen: screen, charW: max(charW, 1), charH: max(charH, 1)}
}

// Clear fills the screen with the dead cell color.
func (s *Surface) Clear() error {
	s.screen.Fill(' ', styleFor(render.DeadColor))
	return nil
}

// FillRect paints every character the rectangle touches.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	cols, rows := s.screen.Size()
	x0, y0 := x/s.charW, y/s.charH
	if x < 0 || y < 0 || x0 >= cols || y0 >= rows {
		return errors.Wrapf(ErrOffscreen, "rect at (%d,%d) on %dx%d terminal", x, y, cols, rows)
	}
	x1, y1 := min((x+w-1)/s.charW, cols-1), min((y+h-1)/s.charH, rows-1)
	style := styleFor(c)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
	return nil
}

// PixelAt maps a character position to the pixel at its top-left corner.
func (s *Surface) PixelAt(col, row int) (int, int) {
	return col * s.charW, row * s.charH
}

func styleFor(c color.RGBA) tcell.Style {
	tc := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	return tcell.StyleDefault.Background(tc).Foreground(tc)
}
