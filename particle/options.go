// Package particle: functional configuration for particle construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every attribute drawn from the RNG can be pinned by an option, so tests
//     can construct exact particles.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package particle

import (
	"image/color"
	"math"
	"math/rand"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilRand    = "particle: WithRand: rng must not be nil"
	panicTTLInvalid = "particle: WithTTL: ttl must be finite and > 0"
	panicNaNInf     = "particle: option value must be finite"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options holds construction-time overrides. A nil pointer means "draw from rng".
type options struct {
	rng         *rand.Rand
	ttl         float64
	velocity    *Velocity
	angularRate *float64
	centerColor *color.RGBA
	rimColor    *color.RGBA
}

// defaultOptions returns the zero-override configuration.
func defaultOptions() options {
	return options{ttl: TTL}
}

// gatherOptions applies opts over the defaults and fills in a deterministic
// RNG when none was supplied.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = NewRand(0)
	}

	return o
}

// WithRand sets the random source used for every drawn attribute.
// The caller keeps ownership; the particle only reads from it during New.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}
	return func(o *options) { o.rng = rng }
}

// WithTTL overrides the initial lifespan (default TTL).
func WithTTL(ttl float64) Option {
	if math.IsNaN(ttl) || math.IsInf(ttl, 0) || ttl <= 0 {
		panic(panicTTLInvalid)
	}
	return func(o *options) { o.ttl = ttl }
}

// WithVelocity pins the initial velocity instead of drawing it.
func WithVelocity(vx, vy float64) Option {
	mustFinite(vx, vy)
	return func(o *options) { o.velocity = &Velocity{X: vx, Y: vy} }
}

// WithAngularRate pins the rotation speed (rad/s, CCW positive).
func WithAngularRate(radPerSec float64) Option {
	mustFinite(radPerSec)
	return func(o *options) { o.angularRate = &radPerSec }
}

// WithColors pins the center and rim colors.
func WithColors(center, rim color.RGBA) Option {
	return func(o *options) {
		o.centerColor = &center
		o.rimColor = &rim
	}
}

// mustFinite panics when any value is NaN or ±Inf.
func mustFinite(vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(panicNaNInf)
		}
	}
}
