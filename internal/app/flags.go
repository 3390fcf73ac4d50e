package app

import "flag"

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim  string
	File string

	// Params collects per-simulation overrides keyed like the sim's FromMap.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Params: map[string]string{}}
}

var paramFlags = []struct {
	key   string
	usage string
}{
	{"w", "window width in pixels"},
	{"h", "window height in pixels"},
	{"grid-w", "grid width in cells"},
	{"grid-h", "grid height in cells"},
	{"fps", "target frame rate"},
	{"pattern", "initial pattern: glider, blinker, random or empty"},
	{"density", "live cell probability for the random pattern"},
	{"seed", "seed for the random pattern"},
	{"redraw", "redraw strategy: incremental or full"},
	{"run", "start with the simulation running"},
}

// Bind attaches the configuration to the provided FlagSet. Simulation
// parameters are only recorded when set on the command line.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.File, "config", c.File, "JSON config file")
	for _, p := range paramFlags {
		key := p.key
		fs.Func(key, p.usage, func(v string) error {
			c.Params[key] = v
			return nil
		})
	}
}

// FactoryConfig merges the config file path into the parameter overrides.
func (c *Config) FactoryConfig() map[string]string {
	out := make(map[string]string, len(c.Params)+1)
	for k, v := range c.Params {
		out[k] = v
	}
	if c.File != "" {
		out["config"] = c.File
	}
	return out
}
