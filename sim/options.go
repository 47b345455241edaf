package sim

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/particles/particle"
)

// DefaultBurst is the number of particles inserted per spawn event.
const DefaultBurst = 5

const (
	panicBurstInvalid = "sim: WithBurst: burst must be > 0"
	panicLimitInvalid = "sim: WithLimit: limit must be >= 0"
	panicNilRand      = "sim: WithRand: rng must not be nil"
)

// Option configures a System at construction.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	burst  int
	limit  int
	logger *slog.Logger
}

func defaultOptions() options {
	return options{burst: DefaultBurst}
}

// WithSeed seeds the System's own random source (0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = particle.NewRand(seed) }
}

// WithRand hands the System an explicit random source. The System becomes its
// only user.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}
	return func(o *options) { o.rng = rng }
}

// WithBurst sets how many particles Spawn inserts per event.
func WithBurst(n int) Option {
	if n <= 0 {
		panic(panicBurstInvalid)
	}
	return func(o *options) { o.burst = n }
}

// WithLimit caps the number of live particles; 0 means unbounded.
func WithLimit(n int) Option {
	if n < 0 {
		panic(panicLimitInvalid)
	}
	return func(o *options) { o.limit = n }
}

// WithLogger sets the logger for this System, overriding the package default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
