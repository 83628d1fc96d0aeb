package rectangle

// DefaultMaxRectangles is the default cap on the number of rectangles
// enumerated before Enumerate stops early.
const DefaultMaxRectangles = 10000

// config holds the resolved, immutable state of an Enumerate call.
// Unexported: callers interact only through Option/With* constructors.
type config struct {
	maxRectangles int
}

func newConfig(opts ...Option) config {
	cfg := config{maxRectangles: DefaultMaxRectangles}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures Enumerate and Best.
type Option func(*config)

// WithMaxRectangles overrides the enumeration cap. A non-positive n
// removes the limit on emitted rectangles; the search itself is still
// bounded by 4*DefaultMaxRectangles traversal steps, after which
// Result.Capped is set.
func WithMaxRectangles(n int) Option {
	return func(c *config) { c.maxRectangles = n }
}
