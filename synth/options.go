package synth

import "github.com/katalvlaran/boolfactor/rectangle"

// DefaultNamePrefix is prepended to the monotonic counter used to mint
// fresh definition names ("t1", "t2", ...).
const DefaultNamePrefix = "t"

// config holds the resolved, immutable state of one Synthesize call.
type config struct {
	maxRectangles int
	namePrefix    string
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxRectangles: rectangle.DefaultMaxRectangles,
		namePrefix:    DefaultNamePrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures Synthesize.
type Option func(*config)

// WithMaxRectangles overrides the rectangle-enumeration cap forwarded
// to package rectangle for every node factored during synthesis.
func WithMaxRectangles(n int) Option {
	return func(c *config) { c.maxRectangles = n }
}

// WithNamePrefix overrides the prefix used when minting fresh
// definition names (default "t", producing t1, t2, ...). The prefix
// must not collide with the input expression's own literals; callers
// that pass a colliding prefix will simply see the counter skip past
// any already-used identifiers, per the fresh-name policy.
func WithNamePrefix(p string) Option {
	return func(c *config) { c.namePrefix = p }
}
