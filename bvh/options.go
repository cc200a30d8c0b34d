package bvh

import (
	"context"
	"fmt"
	"runtime"
)

// Option configures dispatcher behavior via functional arguments.
type Option func(*config)

type config struct {
	ctx               context.Context
	maxConcurrency    int
	recomputeDistance bool
	err               error
}

// DefaultOptions returns the zero-config baseline: context.Background(),
// worker count bounded by runtime.GOMAXPROCS(0), and cached (not
// recomputed) deferred-sibling distances.
func DefaultOptions() config {
	return config{
		ctx:               context.Background(),
		maxConcurrency:    runtime.GOMAXPROCS(0),
		recomputeDistance: false,
	}
}

// WithContext sets a context whose cancellation stops queries that have not
// started yet; a query already running is not interrupted. A non-nil ctx
// argument to TraverseTwoChild/TraverseRope takes precedence over it.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxConcurrency bounds the number of queries processed in parallel.
// n <= 0 is invalid.
func WithMaxConcurrency(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: MaxConcurrency must be positive (%d)", ErrOptionViolation, n)
			return
		}
		c.maxConcurrency = n
	}
}

// WithRecomputeDistance controls how the nearest kernel treats deferred
// sibling distances: when set, a popped node's distance is recomputed via
// the metric instead of read from the value cached alongside it, costing one
// extra metric call per pop. The kernels' 64-float distance array is
// declared and filled in either mode, so this does not shrink the
// per-query footprint.
func WithRecomputeDistance(recompute bool) Option {
	return func(c *config) {
		c.recomputeDistance = recompute
	}
}

func buildConfig(opts []Option) (config, error) {
	c := DefaultOptions()
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return config{}, c.err
	}
	return c, nil
}
