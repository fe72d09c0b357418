package app

import "flag"

// Config represents the command-line parameters for the launcher.
type Config struct {
	Headless bool
	Stress   bool
	Seed     uint
	Dt       float64
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults. Seed 0 means
// "pick one from the clock".
func NewConfig() *Config {
	return &Config{Dt: 1.0, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without the renderer")
	fs.BoolVar(&c.Stress, "stress", c.Stress, "enable the growth controller")
	fs.UintVar(&c.Seed, "seed", c.Seed, "PRNG seed (0 = from the clock)")
	fs.Float64Var(&c.Dt, "dt", c.Dt, "simulated seconds per step")
	fs.IntVar(&c.TPS, "tps", c.TPS, "renderer ticks per second")
}
