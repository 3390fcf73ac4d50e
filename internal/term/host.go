package term

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/core"
)

// Character geometry used by the terminal host: a cell four pixels wide and
// two tall fills two characters of one row.
const (
	CharWidth  = 2
	CharHeight = 2
)

// Host drives a Simulation on a tcell screen with a fixed frame budget.
type Host struct {
	screen  tcell.Screen
	sim     core.Simulation
	surface *Surface
	pacer   *core.FramePacer
	logger  *log.Logger

	buttons tcell.ButtonMask
}

// NewHost prepares a host for an initialised screen.
func NewHost(screen tcell.Screen, sim core.Simulation, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		screen:  screen,
		sim:     sim,
		surface: NewSurface(screen, CharWidth, CharHeight),
		pacer:   core.NewFramePacer(sim.FrameRate()),
		logger:  logger,
	}
}

// Run loops until a quit key arrives or ctx is done. Each frame drains input,
// ticks the simulation once, renders, presents and sleeps out the budget.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go h.pump(events, done)

	h.screen.EnableMouse()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.pacer.Begin()
		if h.drain(events) {
			return nil
		}
		h.sim.OnTick()
		h.sim.Render(h.surface)
		h.drawStatus()
		h.screen.Show()
		h.pacer.Wait()
	}
}

// pump forwards screen events until the screen is finalised or done closes.
func (h *Host) pump(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// drain handles every pending event and reports whether to quit.
func (h *Host) drain(events <-chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok || h.handle(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true
		}
		h.dispatch(core.KeyDown(keyFor(ev), false))
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := h.surface.PixelAt(col, row)
		pressed := ev.Buttons()&tcell.Button1 != 0
		was := h.buttons&tcell.Button1 != 0
		h.buttons = ev.Buttons()
		switch {
		case pressed && !was:
			h.dispatch(core.PointerDown(x, y))
		case !pressed && was:
			h.dispatch(core.PointerUp(x, y))
		default:
			h.dispatch(core.PointerMove(x, y, pressed))
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.surface = NewSurface(h.screen, CharWidth, CharHeight)
	}
	return false
}

func (h *Host) dispatch(ev core.Event) {
	if err := h.sim.OnEvent(ev); err != nil {
		h.logger.Printf("input: %v", err)
	}
}

func keyFor(ev *tcell.EventKey) core.Key {
	if ev.Key() != tcell.KeyRune {
		return core.KeyUnknown
	}
	switch ev.Rune() {
	case ' ':
		return core.KeyToggleRun
	case 'n':
		return core.KeyStep
	case 'r':
		return core.KeyReset
	case 'c':
		return core.KeyClear
	}
	return core.KeyUnknown
}

// drawStatus writes the simulation status on the bottom terminal row.
func (h *Host) drawStatus() {
	reporter, ok := h.sim.(core.StatusReporter)
	if !ok {
		return
	}
	st := reporter.Status()
	state := "paused"
	if st.Running {
		state = "running"
	}
	line := fmt.Sprintf(" %s  gen %d  pop %d  [space] run  [n] step  [r] reset  [c] clear  [q] quit ",
		state, st.Generation, st.Population)
	cols, rows := h.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		h.screen.SetContent(x, rows-1, ' ', nil, style)
	}
}

// FitGrid returns window and grid settings that fill a cols*rows terminal,
// keeping the bottom row for the status line.
func FitGrid(cols, rows int) map[string]string {
	gw, gh := max(cols/2, 1), max(rows-1, 1)
	return map[string]string{
		"grid-w": fmt.Sprint(gw),
		"grid-h": fmt.Sprint(gh),
		"w":      fmt.Sprint(gw * 2 * CharWidth),
		"h":      fmt.Sprint(gh * CharHeight),
	}
}
