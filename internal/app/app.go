//go:build ebiten

package app

import (
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held keys start repeating after repeatDelay ticks, then every repeatInterval.
const (
	repeatDelay    = 30
	repeatInterval = 5
)

var keyBindings = map[ebiten.Key]core.Key{
	ebiten.KeySpace: core.KeyToggleRun,
	ebiten.KeyN:     core.KeyStep,
	ebiten.KeyR:     core.KeyReset,
	ebiten.KeyC:     core.KeyClear,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Simulation
	surface *render.PixelSurface
	canvas  *ebiten.Image
	hud     *ui.HUD
	logger  *log.Logger

	lastX, lastY int
}

// New constructs a Game for the provided simulation.
func New(sim core.Simulation, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	size := sim.Window()
	return &Game{
		sim:     sim,
		surface: render.NewPixelSurface(size.W, size.H, render.DeadColor),
		canvas:  ebiten.NewImage(size.W, size.H),
		hud:     ui.NewHUD(sim),
		logger:  logger,
	}
}

// Update forwards input to the simulation and advances it by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollPointer()
	g.pollKeys()
	g.sim.OnTick()
	return nil
}

func (g *Game) pollPointer() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dispatch(core.PointerDown(x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dispatch(core.PointerUp(x, y))
	case x != g.lastX || y != g.lastY:
		g.dispatch(core.PointerMove(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)))
	}
	g.lastX, g.lastY = x, y
}

func (g *Game) pollKeys() {
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.dispatch(core.KeyDown(action, false))
			continue
		}
		d := inpututil.KeyPressDuration(key)
		if d > repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
			g.dispatch(core.KeyDown(action, true))
		}
	}
}

func (g *Game) dispatch(ev core.Event) {
	if err := g.sim.OnEvent(ev); err != nil {
		g.logger.Printf("input: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(g.surface)
	if g.surface.TakeDirty() {
		g.canvas.WritePixels(g.surface.Pix())
	}
	screen.DrawImage(g.canvas, nil)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Window()
	return s.W, s.H
}
