package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []Cell
}

// Controller is the interactive surface a front end drives once per frame.
// Implementations stay independent of any windowing toolkit.
type Controller interface {
	Sim

	// Tick advances one generation unless paused and reports whether it did.
	Tick() bool
	// Toggle flips the cell at grid coordinates (x, y).
	Toggle(x, y int) error
	// Randomize reseeds every cell and keeps both buffers in sync.
	Randomize(seed int64)
	SetPaused(paused bool)
	Paused() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

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

// SimNames lists the registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
