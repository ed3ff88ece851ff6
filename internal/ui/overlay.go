//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifezoo/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const keyHelp = "space pause  n step  r reset  s reseed  t wrap  h hud  q quit"

// Overlay draws generation and population counters over the board.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update processes overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status lines in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13

	status := fmt.Sprintf("gen %d  pop %d", o.sim.Generation(), o.sim.Population())
	if wt, ok := o.sim.(core.WrapToggler); ok && wt.Toroidal() {
		status += "  torus"
	}
	if paused {
		status += "  [paused]"
	}

	shade := color.RGBA{R: 0, G: 0, B: 0, A: 180}
	text.Draw(screen, status, face, 5, 14, shade)
	text.Draw(screen, status, face, 4, 13, color.White)
	text.Draw(screen, keyHelp, face, 5, 28, shade)
	text.Draw(screen, keyHelp, face, 4, 27, color.RGBA{R: 200, G: 200, B: 200, A: 255})
}
