// Package conway adapts the life engine to the viewer's Sim interface.
package conway

import (
	"strconv"
	"strings"

	"lifezoo/internal/core"
	"lifezoo/pkg/life"
	"lifezoo/pkg/zoo"
)

// Config holds parameters for the Conway board.
type Config struct {
	Width    int
	Height   int
	Toroidal bool
	// Pattern names a zoo creature to stamp at the board centre. When
	// empty the board is reset to a random soup instead.
	Pattern string
	// Fill is the soup density in [0, 1].
	Fill float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Toroidal: true, Fill: 0.3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["toroidal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Toroidal = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	return c
}

// Pattern returns the zoo creature registered under name, or nil when
// the name is unknown. Names are matched case-insensitively.
func Pattern(name string) *life.Grid {
	switch strings.ToLower(name) {
	case "glider":
		return zoo.Glider()
	case "r-pentomino", "rpentomino":
		return zoo.RPentomino()
	case "lwss", "lightweightspaceship":
		return zoo.LightweightSpaceship()
	}
	return nil
}

// Conway runs a life.World behind the viewer Sim contract.
type Conway struct {
	cfg     Config
	world   *life.World
	display []uint8
}

// New creates a Conway sim from the provided configuration.
func New(cfg Config) *Conway {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	world, _ := life.NewWorld(cfg.Width, cfg.Height)
	c := &Conway{cfg: cfg, world: world, display: make([]uint8, cfg.Width*cfg.Height)}
	return c
}

// Name returns the simulation identifier.
func (c *Conway) Name() string { return "conway" }

// Size returns the board dimensions.
func (c *Conway) Size() core.Size { return core.Size{W: c.cfg.Width, H: c.cfg.Height} }

// Cells exposes the display buffer for the current generation.
func (c *Conway) Cells() []uint8 { return c.display }

// Generation returns how many steps have elapsed since the last reset.
func (c *Conway) Generation() int { return c.world.Generation() }

// Population returns the number of live cells.
func (c *Conway) Population() int { return c.world.AliveCells() }

// SetToroidal switches the board topology for subsequent steps.
func (c *Conway) SetToroidal(toroidal bool) { c.cfg.Toroidal = toroidal }

// Toroidal reports whether board edges wrap.
func (c *Conway) Toroidal() bool { return c.cfg.Toroidal }

// World exposes the underlying engine state.
func (c *Conway) World() *life.World { return c.world }

// Reset rebuilds the board. A configured pattern is stamped at the
// centre of an otherwise dead board; without one the board becomes a
// random soup drawn from the seed.
func (c *Conway) Reset(seed int64) {
	grid, _ := life.NewGrid(c.cfg.Width, c.cfg.Height)
	if p := Pattern(c.cfg.Pattern); p != nil &&
		p.Width() <= grid.Width() && p.Height() <= grid.Height() {
		x0 := (grid.Width() - p.Width()) / 2
		y0 := (grid.Height() - p.Height()) / 2
		_ = grid.Merge(p, x0, y0, false)
	} else {
		soup := make([]uint8, grid.TotalCells())
		core.NewRNG(seed).FillBinary(soup, c.cfg.Fill)
		w := grid.Width()
		for i, v := range soup {
			if v == 1 {
				_ = grid.Set(i%w, i/w, life.Alive)
			}
		}
	}
	c.world = life.NewWorldFromGrid(grid)
	c.syncDisplay()
}

// Step advances the board by one generation.
func (c *Conway) Step() {
	c.world.Step(c.cfg.Toroidal)
	c.syncDisplay()
}

func (c *Conway) syncDisplay() {
	state := c.world.State()
	w, h := state.Width(), state.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell, _ := state.Get(x, y)
			c.display[y*w+x] = uint8(cell)
		}
	}
}

func init() {
	core.Register("conway", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
