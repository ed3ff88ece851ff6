package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Toroidal bool
	Pattern  string
	Fill     float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "conway", Width: 256, Height: 256, Scale: 3, TPS: 30, Seed: 42, Toroidal: true, Fill: 0.3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Toroidal, "toroidal", c.Toroidal, "wrap the board edges")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "zoo creature to stamp instead of a random soup")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "random soup density in [0,1]")
}

// SimOptions converts the configuration into the string map consumed by
// simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"toroidal": strconv.FormatBool(c.Toroidal),
		"pattern":  c.Pattern,
		"fill":     strconv.FormatFloat(c.Fill, 'g', -1, 64),
	}
}
