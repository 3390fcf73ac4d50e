package life

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.WindowWidth = 50
	cfg.WindowHeight = 50
	cfg.GridWidth = 5
	cfg.GridHeight = 5
	cfg.Pattern = PatternEmpty
	return cfg
}

func newLife(t *testing.T, cfg Config) *Life {
	t.Helper()
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.SetLogger(log.New(&bytes.Buffer{}, "", 0))
	return l
}

func aliveSet(l *Life) map[[2]int]bool {
	out := map[[2]int]bool{}
	g := l.Grid()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Alive(row, col) {
				out[[2]int{row, col}] = true
			}
		}
	}
	return out
}

func sameCells(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestBlinkerThroughHostLoop(t *testing.T) {
	l := newLife(t, smallConfig())
	for _, c := range [][2]int{{1, 1}, {1, 2}, {1, 3}} {
		if err := l.SetCell(c[0], c[1], true); err != nil {
			t.Fatalf("SetCell: %v", err)
		}
	}
	seeded := aliveSet(l)

	l.OnTick()
	if l.Status().Generation != 0 {
		t.Fatal("paused game advanced on tick")
	}

	if err := l.OnEvent(core.KeyDown(core.KeyToggleRun, false)); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	l.OnTick()
	want := map[[2]int]bool{{0, 2}: true, {1, 2}: true, {2, 2}: true}
	if got := aliveSet(l); !sameCells(got, want) {
		t.Fatalf("after one tick alive=%v, expected %v", got, want)
	}
	l.OnTick()
	if got := aliveSet(l); !sameCells(got, seeded) {
		t.Fatalf("after two ticks alive=%v, expected %v", got, seeded)
	}
}

func TestKeyRepeatAndUnknownKeysIgnored(t *testing.T) {
	l := newLife(t, smallConfig())
	l.OnEvent(core.KeyDown(core.KeyToggleRun, true))
	l.OnEvent(core.KeyDown(core.KeyUnknown, false))
	if l.Running() {
		t.Fatal("repeated key toggled the simulation")
	}
}

func TestRunTransitionsAreLogged(t *testing.T) {
	l := newLife(t, smallConfig())
	var buf bytes.Buffer
	l.SetLogger(log.New(&buf, "", 0))
	l.OnEvent(core.KeyDown(core.KeyToggleRun, false))
	l.OnEvent(core.KeyDown(core.KeyToggleRun, false))
	if got := buf.String(); got != "Evolving\nPaused\n" {
		t.Fatalf("log=%q", got)
	}
}

func TestStepKeyOnlyWhilePaused(t *testing.T) {
	l := newLife(t, smallConfig())
	l.OnEvent(core.KeyDown(core.KeyStep, false))
	if l.Status().Generation != 1 {
		t.Fatalf("step key while paused: generation %d", l.Status().Generation)
	}
	l.OnEvent(core.KeyDown(core.KeyToggleRun, false))
	l.OnEvent(core.KeyDown(core.KeyStep, false))
	if l.Status().Generation != 1 {
		t.Fatalf("step key while running: generation %d", l.Status().Generation)
	}
}

func TestPointerDrawing(t *testing.T) {
	l := newLife(t, smallConfig())

	// Cells are 10x10 pixels.
	if err := l.OnEvent(core.PointerDown(15, 25)); err != nil {
		t.Fatalf("pointer down: %v", err)
	}
	if !l.Grid().Alive(2, 1) {
		t.Fatal("pointer down did not toggle cell (2,1) alive")
	}
	l.OnEvent(core.PointerMove(25, 25, true))
	l.OnEvent(core.PointerMove(35, 25, true))
	l.OnEvent(core.PointerMove(45, 45, false))
	l.OnEvent(core.PointerUp(35, 25))
	l.OnEvent(core.PointerMove(5, 5, true))

	want := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	if got := aliveSet(l); !sameCells(got, want) {
		t.Fatalf("drawn cells=%v, expected %v", got, want)
	}

	// Pressing on a live cell erases along the drag.
	l.OnEvent(core.PointerDown(25, 25))
	l.OnEvent(core.PointerMove(35, 25, true))
	l.OnEvent(core.PointerUp(35, 25))
	want = map[[2]int]bool{{2, 1}: true}
	if got := aliveSet(l); !sameCells(got, want) {
		t.Fatalf("after erase cells=%v, expected %v", got, want)
	}
}

func TestPointerOutsideGridIsRejected(t *testing.T) {
	cfg := smallConfig()
	cfg.WindowWidth = 57
	l := newLife(t, cfg)

	for _, ev := range []core.Event{core.PointerDown(-1, 3), core.PointerDown(56, 3), core.PointerDown(3, 50)} {
		if err := l.OnEvent(ev); errors.Cause(err) != core.ErrOutOfBounds {
			t.Fatalf("event %+v err=%v, expected ErrOutOfBounds", ev, err)
		}
	}
	if len(aliveSet(l)) != 0 {
		t.Fatal("rejected pointer events changed the grid")
	}

	l.OnEvent(core.PointerDown(5, 5))
	if err := l.OnEvent(core.PointerMove(70, 5, true)); errors.Cause(err) != core.ErrOutOfBounds {
		t.Fatalf("drag off-grid err=%v", err)
	}
	if err := l.SetCell(5, 0, true); errors.Cause(err) != core.ErrOutOfBounds {
		t.Fatalf("SetCell(5,0) err=%v", err)
	}
}

func TestResetAndClearKeys(t *testing.T) {
	cfg := smallConfig()
	cfg.Pattern = PatternBlinker
	l := newLife(t, cfg)
	seeded := aliveSet(l)
	if len(seeded) != 3 {
		t.Fatalf("blinker seeded %d cells", len(seeded))
	}

	l.OnEvent(core.KeyDown(core.KeyClear, false))
	if len(aliveSet(l)) != 0 {
		t.Fatal("clear key left live cells")
	}
	l.OnEvent(core.KeyDown(core.KeyReset, false))
	if got := aliveSet(l); !sameCells(got, seeded) {
		t.Fatalf("reset seeded %v, expected %v", got, seeded)
	}
}

func TestRandomPatternIsDeterministic(t *testing.T) {
	cfg := smallConfig()
	cfg.GridWidth, cfg.GridHeight = 20, 20
	cfg.WindowWidth, cfg.WindowHeight = 40, 40
	cfg.Pattern = PatternRandom
	cfg.Density = 0.5
	a, b := newLife(t, cfg), newLife(t, cfg)
	if !sameCells(aliveSet(a), aliveSet(b)) || len(aliveSet(a)) == 0 {
		t.Fatal("random pattern not reproducible for the same seed")
	}
}

func TestRenderUsesPixelSurface(t *testing.T) {
	l := newLife(t, smallConfig())
	s := render.NewPixelSurface(50, 50, render.DeadColor)
	l.Render(s)
	l.OnEvent(core.PointerDown(22, 33))
	l.Render(s)
	if s.At(22, 33) != render.AliveColor {
		t.Fatal("drawn cell not rendered")
	}
	if s.At(29, 39) != render.DeadColor {
		t.Fatal("cell gap rendered as alive")
	}
}

func TestDefaultConfigSeedsGlider(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if w, h := cfg.CellSize(); w != 2 || h != 2 {
		t.Fatalf("default cell size %dx%d", w, h)
	}
	l := newLife(t, cfg)
	want := map[[2]int]bool{{20, 20}: true, {21, 20}: true, {22, 20}: true, {20, 19}: true, {21, 18}: true}
	if got := aliveSet(l); !sameCells(got, want) {
		t.Fatalf("default seed=%v", got)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := map[string]func(*Config){
		"zero grid":      func(c *Config) { c.GridWidth = 0 },
		"small window":   func(c *Config) { c.WindowHeight = 4 },
		"frame rate":     func(c *Config) { c.FrameRate = 0 },
		"density":        func(c *Config) { c.Density = 1.5 },
		"redraw":         func(c *Config) { c.Redraw = "sometimes" },
		"pattern":        func(c *Config) { c.Pattern = "gun" },
		"glider too big": func(c *Config) { c.Pattern = PatternGlider },
	}
	for name, mutate := range cases {
		cfg := smallConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
		if _, err := New(cfg); err == nil {
			t.Fatalf("%s: New accepted invalid config", name)
		}
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w": "300", "h": "200", "grid-w": "30", "grid-h": "20", "fps": "60",
		"pattern": "random", "density": "0.3", "seed": "7", "redraw": "full", "run": "true",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	want := Config{
		WindowWidth: 300, WindowHeight: 200, FrameRate: 60, GridWidth: 30, GridHeight: 20,
		Pattern: PatternRandom, Density: 0.3, Seed: 7, Redraw: "full", StartRunning: true,
	}
	if cfg != want {
		t.Fatalf("FromMap=%+v\nexpected %+v", cfg, want)
	}
	if _, err := FromMap(map[string]string{"fps": "fast"}); err == nil {
		t.Fatal("FromMap accepted a malformed int")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.json")
	body := `{"grid_width": 40, "grid_height": 30, "window_width": 400, "window_height": 300, "pattern": "blinker"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(map[string]string{"config": path, "fps": "25"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GridWidth != 40 || cfg.GridHeight != 30 || cfg.Pattern != PatternBlinker || cfg.FrameRate != 25 {
		t.Fatalf("Load=%+v", cfg)
	}

	if _, err := Load(map[string]string{"config": filepath.Join(dir, "missing.json")}); err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("missing file err=%v", err)
	}
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(map[string]string{"config": path}); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("bad json err=%v", err)
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim, err := factory(map[string]string{"w": "100", "h": "100", "grid-w": "50", "grid-h": "50"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Name() != "life" || sim.Window() != (core.Size{W: 100, H: 100}) || sim.FrameRate() != 10 {
		t.Fatalf("factory built %s window=%v fps=%d", sim.Name(), sim.Window(), sim.FrameRate())
	}
	if _, ok := sim.(core.StatusReporter); !ok {
		t.Fatal("life does not report status")
	}
	if _, err := factory(map[string]string{"grid-w": "0"}); err == nil {
		t.Fatal("factory accepted a zero-width grid")
	}
}
