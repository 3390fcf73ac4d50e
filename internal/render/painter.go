package render

import (
	"image/color"
	"log"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Mode selects how a Painter keeps the surface in sync with the grid.
type Mode uint8

const (
	// Incremental draws cells as they change and redraws the whole grid only
	// when the surface is new or invalidated.
	Incremental Mode = iota
	// FullRedraw clears and repaints every cell on each Render.
	FullRedraw
)

// String returns the config name of the mode.
func (m Mode) String() string {
	if m == FullRedraw {
		return "full"
	}
	return "incremental"
}

// ParseMode maps a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "incremental":
		return Incremental, nil
	case "full":
		return FullRedraw, nil
	}
	return Incremental, errors.Errorf("unknown redraw mode %q", s)
}

var (
	// AliveColor fills live cells.
	AliveColor = color.RGBA{A: 255}
	// DeadColor fills dead cells and the background.
	DeadColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Painter draws one filled rectangle per grid cell.
type Painter struct {
	grid         *core.Grid
	cellW, cellH int
	mode         Mode

	surface core.Surface
	stale   bool
	failing bool
	logger  *log.Logger
}

// NewPainter constructs a painter for grid with cells of cellW*cellH pixels.
// In Incremental mode it installs itself as the grid observer.
func NewPainter(grid *core.Grid, cellW, cellH int, mode Mode) *Painter {
	p := &Painter{
		grid:   grid,
		cellW:  cellW,
		cellH:  cellH,
		mode:   mode,
		stale:  true,
		logger: log.Default(),
	}
	if mode == Incremental {
		grid.Observe(p.DrawCell)
	}
	return p
}

// SetLogger replaces the logger used for draw failures.
func (p *Painter) SetLogger(l *log.Logger) {
	if l != nil {
		p.logger = l
	}
}

// Mode returns the painter's redraw mode.
func (p *Painter) Mode() Mode { return p.mode }

// Invalidate forces a full redraw on the next Render.
func (p *Painter) Invalidate() { p.stale = true }

// Render brings s up to date with the grid. A surface different from the
// previous one is always fully repainted.
func (p *Painter) Render(s core.Surface) {
	if s == nil {
		return
	}
	if s != p.surface {
		p.surface = s
		p.stale = true
	}
	if p.mode == FullRedraw || p.stale {
		p.Redraw()
	}
}

// Redraw clears the bound surface and paints every cell.
func (p *Painter) Redraw() {
	if p.surface == nil {
		return
	}
	p.stale = false
	if err := p.surface.Clear(); err != nil {
		p.report(errors.Wrap(err, "clear surface"))
	}
	ok := true
	w, h := p.grid.Width(), p.grid.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ok = p.fill(row, col, p.grid.Alive(row, col)) && ok
		}
	}
	if ok {
		p.failing = false
	}
}

// DrawCell paints a single cell. It does nothing until a surface is bound or
// while a full redraw is pending.
func (p *Painter) DrawCell(row, col int, alive bool) {
	if p.surface == nil || p.stale {
		return
	}
	p.fill(row, col, alive)
}

// CellRect returns the rectangle a cell occupies. Cells keep a one pixel gap
// on their right and bottom edges unless they are only one pixel wide or tall.
func (p *Painter) CellRect(row, col int) (x, y, w, h int) {
	w, h = max(p.cellW-1, 1), max(p.cellH-1, 1)
	return col * p.cellW, row * p.cellH, w, h
}

func (p *Painter) fill(row, col int, alive bool) bool {
	c := DeadColor
	if alive {
		c = AliveColor
	}
	x, y, w, h := p.CellRect(row, col)
	if err := p.surface.FillRect(x, y, w, h, c); err != nil {
		p.report(errors.Wrapf(err, "draw cell (%d,%d)", row, col))
		return false
	}
	return true
}

// report logs the first failure since the last clean full redraw.
func (p *Painter) report(err error) {
	if p.failing {
		return
	}
	p.failing = true
	p.logger.Printf("render: %v", err)
}
