package life

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"lifegrid/internal/render"
)

// Config holds the window, pacing and seeding parameters of a Life game.
type Config struct {
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	FrameRate    int     `json:"frame_rate"`
	GridWidth    int     `json:"grid_width"`
	GridHeight   int     `json:"grid_height"`
	Pattern      string  `json:"pattern"`
	Density      float64 `json:"density"`
	Seed         int64   `json:"seed"`
	Redraw       string  `json:"redraw"`
	StartRunning bool    `json:"start_running"`
}

// DefaultConfig returns a 500x500 grid in a 1000x1000 window at 10 fps,
// seeded with a glider.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  1000,
		WindowHeight: 1000,
		FrameRate:    10,
		GridWidth:    500,
		GridHeight:   500,
		Pattern:      PatternGlider,
		Density:      0.15,
		Seed:         42,
		Redraw:       render.Incremental.String(),
	}
}

// Load builds a Config from defaults, the JSON file named by cfg["config"]
// when present, and the remaining keys of cfg, then validates it.
func Load(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if path := cfg["config"]; path != "" {
		var err error
		if c, err = LoadFile(path, c); err != nil {
			return c, err
		}
	}
	c, err := c.Apply(cfg)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

// LoadFile overlays the JSON file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, &base); err != nil {
		return base, errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return base, nil
}

// FromMap populates the default config from a string map (flag-style
// key/value pairs). Malformed values are reported by Apply.
func FromMap(cfg map[string]string) (Config, error) {
	return DefaultConfig().Apply(cfg)
}

// Apply overlays the recognised keys of cfg onto c.
func (c Config) Apply(cfg map[string]string) (Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.WindowWidth},
		{"h", &c.WindowHeight},
		{"fps", &c.FrameRate},
		{"grid-w", &c.GridWidth},
		{"grid-h", &c.GridHeight},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "parse %s", f.key)
		}
		*f.dst = parsed
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["redraw"]; ok {
		c.Redraw = v
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrap(err, "parse density")
		}
		c.Density = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrap(err, "parse seed")
		}
		c.Seed = parsed
	}
	if v, ok := cfg["run"]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrap(err, "parse run")
		}
		c.StartRunning = parsed
	}
	return c, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.GridWidth <= 0 || c.GridHeight <= 0:
		return errors.Errorf("grid size %dx%d must be positive", c.GridWidth, c.GridHeight)
	case c.WindowWidth < c.GridWidth || c.WindowHeight < c.GridHeight:
		return errors.Errorf("window %dx%d is smaller than grid %dx%d",
			c.WindowWidth, c.WindowHeight, c.GridWidth, c.GridHeight)
	case c.FrameRate <= 0:
		return errors.Errorf("frame rate %d must be positive", c.FrameRate)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v outside [0, 1]", c.Density)
	}
	if _, err := render.ParseMode(c.Redraw); err != nil {
		return err
	}
	p, ok := patterns[c.Pattern]
	if !ok {
		return errors.Errorf("unknown pattern %q", c.Pattern)
	}
	for _, cell := range p.cells(c.GridWidth, c.GridHeight) {
		if cell[0] < 0 || cell[1] < 0 || cell[0] >= c.GridHeight || cell[1] >= c.GridWidth {
			return errors.Errorf("pattern %q does not fit a %dx%d grid", c.Pattern, c.GridWidth, c.GridHeight)
		}
	}
	return nil
}

// CellSize returns the pixel size of one cell.
func (c Config) CellSize() (int, int) {
	return c.WindowWidth / c.GridWidth, c.WindowHeight / c.GridHeight
}
