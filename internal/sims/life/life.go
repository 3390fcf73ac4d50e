package life

import (
	"log"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
)

// Life is Conway's Game of Life on a bounded grid, edited with the pointer.
type Life struct {
	cfg     Config
	grid    *core.Grid
	painter *render.Painter

	cellW, cellH int

	running bool
	drawing bool
	pen     bool

	logger *log.Logger
}

// New validates cfg and returns a seeded Life game.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, err
	}
	mode, err := render.ParseMode(cfg.Redraw)
	if err != nil {
		return nil, err
	}
	cw, ch := cfg.CellSize()
	l := &Life{
		cfg:     cfg,
		grid:    grid,
		painter: render.NewPainter(grid, cw, ch, mode),
		cellW:   cw,
		cellH:   ch,
		running: cfg.StartRunning,
		logger:  log.Default(),
	}
	seed(grid, cfg)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Window returns the pixel size of the render surface.
func (l *Life) Window() core.Size {
	return core.Size{W: l.cfg.WindowWidth, H: l.cfg.WindowHeight}
}

// FrameRate returns the target frames per second.
func (l *Life) FrameRate() int { return l.cfg.FrameRate }

// Grid exposes the underlying cell grid.
func (l *Life) Grid() *core.Grid { return l.grid }

// Running reports whether OnTick advances the simulation.
func (l *Life) Running() bool { return l.running }

// Status summarizes the game for HUDs.
func (l *Life) Status() core.Status {
	return core.Status{
		Generation: l.grid.Generation(),
		Population: l.grid.Population(),
		Running:    l.running,
	}
}

// SetLogger replaces the logger for run-state and render diagnostics.
func (l *Life) SetLogger(lg *log.Logger) {
	if lg == nil {
		return
	}
	l.logger = lg
	l.painter.SetLogger(lg)
}

// Reset reseeds the grid with the configured pattern.
func (l *Life) Reset() { seed(l.grid, l.cfg) }

// SetCell brings the cell at (row, col) to the requested state. It is the
// seeding entry point for hosts and rejects coordinates outside the grid.
func (l *Life) SetCell(row, col int, alive bool) error {
	if !l.grid.Contains(row, col) {
		return errors.Wrapf(core.ErrOutOfBounds, "cell (%d,%d) on %dx%d grid", row, col, l.grid.Width(), l.grid.Height())
	}
	l.grid.SetCell(row, col, alive)
	return nil
}

// OnEvent applies one host input event. Pointer positions outside the grid
// are reported as errors wrapping core.ErrOutOfBounds and change nothing.
func (l *Life) OnEvent(ev core.Event) error {
	switch ev.Kind {
	case core.EventPointerDown:
		row, col, err := l.cellAt(ev.X, ev.Y)
		if err != nil {
			return errors.Wrap(err, "pointer down")
		}
		l.pen = !l.grid.Alive(row, col)
		l.grid.SetCell(row, col, l.pen)
		l.drawing = true
	case core.EventPointerUp:
		l.drawing = false
	case core.EventPointerMove:
		if !l.drawing || !ev.Pressed {
			return nil
		}
		row, col, err := l.cellAt(ev.X, ev.Y)
		if err != nil {
			return errors.Wrap(err, "pointer move")
		}
		l.grid.SetCell(row, col, l.pen)
	case core.EventKeyDown:
		if ev.Repeat {
			return nil
		}
		l.onKey(ev.Key)
	}
	return nil
}

func (l *Life) onKey(k core.Key) {
	switch k {
	case core.KeyToggleRun:
		l.running = !l.running
		if l.running {
			l.logger.Print("Evolving")
		} else {
			l.logger.Print("Paused")
		}
	case core.KeyStep:
		if !l.running {
			l.grid.Step()
		}
	case core.KeyReset:
		l.Reset()
	case core.KeyClear:
		l.grid.Clear()
	}
}

// OnTick advances one generation when the game is running.
func (l *Life) OnTick() {
	if l.running {
		l.grid.Step()
	}
}

// Render brings s up to date with the grid.
func (l *Life) Render(s core.Surface) { l.painter.Render(s) }

// Invalidate forces the next Render to repaint every cell.
func (l *Life) Invalidate() { l.painter.Invalidate() }

func (l *Life) cellAt(x, y int) (row, col int, err error) {
	if x >= 0 && y >= 0 {
		row, col = y/l.cellH, x/l.cellW
		if l.grid.Contains(row, col) {
			return row, col, nil
		}
	}
	return 0, 0, errors.Wrapf(core.ErrOutOfBounds, "pixel (%d,%d)", x, y)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Simulation, error) {
		c, err := Load(cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
