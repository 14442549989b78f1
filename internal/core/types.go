package core

// Size describes the raster dimensions a simulation renders into.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a lattice simulation must implement.
// Cells exposes a palette-indexed display raster of Size().W*Size().H values.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim from flag-style key/value options. Construction
// can fail (for example a degenerate lattice radius); no partial Sim is
// returned alongside an error.
type Factory func(cfg map[string]string) (Sim, error)

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
