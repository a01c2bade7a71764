package qsubset

import (
	"github.com/hupe1980/qsubset/backend"
)

// DefaultShots is the number of measurement samples drawn when none is
// configured.
const DefaultShots = 1024

type options struct {
	shots             int
	iterations        int // 0 selects the default heuristic
	exact             bool
	seed              *uint64
	parallelThreshold int
	backend           backend.Backend
	logger            *Logger
	metrics           MetricsCollector
}

// Option configures solver construction.
type Option func(*options)

// WithShots sets the number of measurement samples per execution.
// Default: DefaultShots.
func WithShots(shots int) Option {
	return func(o *options) {
		o.shots = shots
	}
}

// WithIterations overrides the amplification iteration count.
//
// The default, floor(sqrt(2^n)) for n values, is a worst-case heuristic; for
// instances with many solutions it may rotate past the optimal amplitude
// peak, so treat this as a tunable rather than a guaranteed-optimal
// constant.
func WithIterations(iterations int) Option {
	return func(o *options) {
		o.iterations = iterations
	}
}

// WithExactDistribution makes Execute consume the backend's exact
// measurement distribution instead of drawing samples. The configured
// backend must implement backend.DistributionBackend; the built-in
// simulator does.
func WithExactDistribution(exact bool) Option {
	return func(o *options) {
		o.exact = exact
	}
}

// WithRandomSeed fixes the sampling seed of the default simulator backend
// for reproducible runs. Ignored when a custom backend is configured.
func WithRandomSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithParallelThreshold sets the minimum state-vector length before the
// default simulator's gate kernels parallelize. Zero keeps the simulator
// default; negative disables parallelism. Ignored when a custom backend is
// configured.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

// WithBackend replaces the default in-process simulator with another
// execution backend, e.g. a client for a remote quantum device. Backend
// errors are propagated to the caller unmodified; the solver performs no
// retries.
func WithBackend(b backend.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithLogger sets the structured logger for operation tracing.
// Default: NoopLogger().
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
