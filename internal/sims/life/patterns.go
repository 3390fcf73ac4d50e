package life

import "lifegrid/internal/core"

// Pattern names accepted by Config.Pattern.
const (
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternRandom  = "random"
	PatternEmpty   = "empty"
)

type pattern struct {
	// cells lists (row, col) pairs to bring alive on a w*h grid.
	cells func(w, h int) [][2]int
	// random seeds each cell with the configured density instead.
	random bool
}

func fixed(cells ...[2]int) func(int, int) [][2]int {
	return func(int, int) [][2]int { return cells }
}

var patterns = map[string]pattern{
	PatternGlider: {cells: fixed([2]int{20, 20}, [2]int{21, 20}, [2]int{22, 20}, [2]int{20, 19}, [2]int{21, 18})},
	PatternBlinker: {cells: func(w, h int) [][2]int {
		r, c := h/2, w/2
		return [][2]int{{r, c - 1}, {r, c}, {r, c + 1}}
	}},
	PatternRandom: {cells: fixed(), random: true},
	PatternEmpty:  {cells: fixed()},
}

// seed clears g and applies the configured pattern.
func seed(g *core.Grid, cfg Config) {
	g.Clear()
	p := patterns[cfg.Pattern]
	if p.random {
		core.FillRandom(g, core.NewRNG(cfg.Seed), cfg.Density)
		return
	}
	for _, cell := range p.cells(g.Width(), g.Height()) {
		if g.Contains(cell[0], cell[1]) {
			g.SetCell(cell[0], cell[1], true)
		}
	}
}
