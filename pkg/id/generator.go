package id

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithEntropy sets the random source. Defaults to a new Mixer. Pass the same
// *Mixer to several generators to have them share one counter.
func WithEntropy(e Entropy) Option {
	return func(g *Generator) {
		if e != nil {
			g.entropy = e
		}
	}
}

// Generator produces IDs from a Clock and an Entropy source. It is safe for
// concurrent use and holds no lock.
//
// IDs from distinct, increasing clock readings compare in reading order.
// IDs within the same millisecond are ordered by their random component only;
// Generator does not enforce monotonicity inside a millisecond.
type Generator struct {
	clock   Clock
	entropy Entropy
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	if g.entropy == nil {
		g.entropy = NewMixer()
	}
	return g
}

// New returns a new ID.
func (g *Generator) New() ID {
	return FromParts(g.clock.NowMs(), g.entropy.Next())
}

// At returns a new ID with the given timestamp and fresh randomness.
func (g *Generator) At(ms uint64) ID {
	return FromParts(ms, g.entropy.Next())
}
