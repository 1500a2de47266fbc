package kquant

import (
	"math/rand"
	"time"
)

// DefaultMaxIterations is the number of assignment/update rounds run when
// no WithMaxIterations option is given.
const DefaultMaxIterations = 100

type options struct {
	maxIterations int
	seed          int64
	rng           *rand.Rand
	earlyStop     bool
	workers       int
	initializer   Initializer
	logger        *Logger
	metrics       MetricsCollector
}

func defaultOptions() options {
	return options{
		maxIterations: DefaultMaxIterations,
		seed:          time.Now().UnixNano(),
		workers:       1,
		initializer:   RandomSampler{},
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
}

// Option configures a Quantize call.
type Option func(*options)

// WithMaxIterations sets the iteration cap. Without early stopping every
// run executes exactly this many rounds.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithSeed seeds the generator used to pick the initial centroids. Two runs
// with the same image, k, iteration cap and seed produce identical results.
// Without a seed or generator the current time is used.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand supplies the generator used to pick the initial centroids.
// It takes precedence over WithSeed. nil restores seeding.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithEarlyStop ends the loop after a round in which no point changed
// cluster. The centroids could not move any more, so the output equals the
// one produced by running all rounds. Off by default.
func WithEarlyStop(enabled bool) Option {
	return func(o *options) {
		o.earlyStop = enabled
	}
}

// WithWorkers splits the assignment step across n goroutines. Results are
// identical to the serial loop. 0 means one worker per CPU, 1 is serial.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithInitializer replaces the random centroid sampler.
//
// If nil is passed, RandomSampler is used.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		if init == nil {
			init = RandomSampler{}
		}
		o.initializer = init
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are
// discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
