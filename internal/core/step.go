package core

// neighborOffsets lists the (row, col) deltas of the eight adjacent cells.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NextAlive applies B3/S23: a live cell survives with two or three neighbors
// and a dead cell is born with exactly three.
func NextAlive(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Step advances the grid by one generation.
//
// Rule evaluation reads a snapshot taken before any cell changes; outcomes are
// applied to the live grid through SetCell so neighbor counts are ready for
// the next generation. Zero bytes (dead, no live neighbors) cannot change and
// are skipped without evaluation.
func (g *Grid) Step() {
	copy(g.snap, g.cells)
	g.evaluated = 0

	for row := 0; row < g.h; row++ {
		base := row * g.w
		line := g.snap[base : base+g.w]
		for col := nextLive(line, 0); col >= 0; col = nextLive(line, col+1) {
			g.evaluated++
			c := line[col]
			next := NextAlive(c&aliveBit != 0, int(c>>1))
			if next != (g.cells[base+col]&aliveBit != 0) {
				g.SetCell(row, col, next)
			}
		}
	}
	g.generation++
}

// Evaluated returns how many cells the last Step evaluated against the rule.
func (g *Grid) Evaluated() int { return g.evaluated }

// nextLive returns the first column at or after from holding a non-zero byte,
// or -1 when the rest of the row is zero.
func nextLive(line []uint8, from int) int {
	for i := from; i < len(line); i++ {
		if line[i] != 0 {
			return i
		}
	}
	return -1
}
