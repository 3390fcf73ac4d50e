//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line status bar over the top-left of the simulation.
type HUD struct {
	reporter core.StatusReporter
	pixel    *ebiten.Image
}

// NewHUD constructs a HUD for sim. Simulations without a status render nothing.
func NewHUD(sim core.Simulation) *HUD {
	h := &HUD{}
	if reporter, ok := sim.(core.StatusReporter); ok {
		h.reporter = reporter
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Draw paints the status bar onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.reporter == nil {
		return
	}
	st := h.reporter.Status()
	state := "paused"
	if st.Running {
		state = "running"
	}
	line := fmt.Sprintf("%s  gen %d  pop %d", state, st.Generation, st.Population)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	bg := color.RGBA{R: 16, G: 16, B: 20, A: 200}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*panelPadding), float64(lineHeight))
	op.ColorScale.ScaleWithColor(bg)
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, line, face, panelPadding, textBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

const (
	panelPadding = 6
	lineHeight   = 20
	textBaseline = 14
)
