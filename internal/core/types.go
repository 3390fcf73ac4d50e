package core

import "image/color"

// Size describes the dimensions of a grid or drawing surface.
type Size struct {
	W int
	H int
}

// Surface is the drawing primitive a host provides to a simulation.
type Surface interface {
	Clear() error
	FillRect(x, y, w, h int, c color.RGBA) error
}

// Status summarizes a running simulation for host HUDs.
type Status struct {
	Generation uint64
	Population int
	Running    bool
}

// Simulation is the contract a host loop drives once per frame: input first,
// then a tick, then rendering.
type Simulation interface {
	Name() string
	// Window is the pixel size of the surface the simulation renders to.
	Window() Size
	FrameRate() int
	OnEvent(ev Event) error
	OnTick()
	Render(s Surface)
}

// StatusReporter is implemented by simulations that expose a Status line.
type StatusReporter interface {
	Status() Status
}

// Factory constructs a Simulation from flag-style key/value settings.
type Factory func(cfg map[string]string) (Simulation, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
