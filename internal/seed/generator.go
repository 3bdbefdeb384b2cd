package seed

const (
	modulus    = 2147483647 // 2^31 - 1
	multiplier = 16807
)

// Generator is a Park-Miller minimal-standard generator. The stream it
// produces is fully determined by the seed; replaying it requires a fresh
// Generator built from the same seed.
type Generator struct {
	state int64
}

// New creates a Generator. The seed is reduced into [1, modulus-1].
func New(seed int64) *Generator {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	return &Generator{state: s}
}

// Next advances the state and returns a value in [0, 1).
func (g *Generator) Next() float64 {
	g.state = g.state * multiplier % modulus
	return float64(g.state) / modulus
}

// State returns the current internal state.
func (g *Generator) State() int64 { return g.state }
