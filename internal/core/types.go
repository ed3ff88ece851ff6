package core

// Size describes the dimensions of a simulation board.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer expects from a runnable automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Generation() int
	Population() int
}

// WrapToggler is implemented by sims whose board edges can switch
// between bounded and toroidal topology at runtime.
type WrapToggler interface {
	SetToroidal(toroidal bool)
	Toroidal() bool
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
