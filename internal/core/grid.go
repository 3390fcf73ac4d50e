package core

import "github.com/pkg/errors"

const (
	aliveBit     = 0x01
	neighborUnit = 2
)

var (
	// ErrBadDimensions reports a grid constructed with a non-positive size.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds reports a row/column outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// CellObserver is notified after a cell changes state.
type CellObserver func(row, col int, alive bool)

// Grid stores packed Life cells in row-major order. Bit 0 of each byte is the
// alive flag and bits 1-7 hold the live neighbor count shifted left by one.
//
// Addressed methods do not check bounds; use Contains at input boundaries.
type Grid struct {
	w, h  int
	cells []uint8
	snap  []uint8

	observer   CellObserver
	generation uint64
	evaluated  int
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrBadDimensions, "%dx%d", w, h)
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]uint8, w*h),
		snap:  make([]uint8, w*h),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the packed backing slice. Callers must not write to it.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// Contains reports whether (row, col) addresses a cell of the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Alive reports the alive flag of the cell at (row, col).
func (g *Grid) Alive(row, col int) bool {
	return g.cells[row*g.w+col]&aliveBit != 0
}

// Neighbors returns the live neighbor count of the cell at (row, col).
func (g *Grid) Neighbors(row, col int) int {
	return int(g.cells[row*g.w+col] >> 1)
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c & aliveBit)
	}
	return n
}

// Generation returns the number of completed Step calls since the last Clear.
func (g *Grid) Generation() uint64 { return g.generation }

// Observe installs fn as the cell observer, replacing any previous one. A nil
// fn removes it.
func (g *Grid) Observe(fn CellObserver) { g.observer = fn }

// SetCell moves the cell at (row, col) to the requested state and adjusts the
// neighbor count of every existing neighbor. It is a no-op returning false
// when the cell already holds that state.
func (g *Grid) SetCell(row, col int, alive bool) bool {
	i := row*g.w + col
	c := g.cells[i]
	if (c&aliveBit != 0) == alive {
		return false
	}

	delta := uint8(neighborUnit)
	if alive {
		g.cells[i] = c | aliveBit
	} else {
		g.cells[i] = c &^ aliveBit
		delta = -delta
	}

	for _, off := range neighborOffsets {
		r, cc := row+off[0], col+off[1]
		if r < 0 || r >= g.h || cc < 0 || cc >= g.w {
			continue
		}
		g.cells[r*g.w+cc] += delta
	}

	if g.observer != nil {
		g.observer(row, col, alive)
	}
	return true
}

// Clear kills every live cell and resets the generation counter.
func (g *Grid) Clear() {
	for i, c := range g.cells {
		if c&aliveBit != 0 {
			g.SetCell(i/g.w, i%g.w, false)
		}
	}
	g.generation = 0
	g.evaluated = 0
}
