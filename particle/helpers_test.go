package particle_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/particles/particle"
)

// eps is the tolerance for floating comparisons of transformed coordinates.
const eps = 1e-4

// mustFrame builds a Frame or fails the test.
func mustFrame(tb testing.TB, w, h int) particle.Frame {
	tb.Helper()
	f, err := particle.NewFrame(w, h)
	require.NoError(tb, err)
	return f
}

// mustParticle builds a seeded particle at a pixel position or fails the test.
func mustParticle(tb testing.TB, frame particle.Frame, n int, px image.Point, seed int64, opts ...particle.Option) *particle.Particle {
	tb.Helper()
	all := append([]particle.Option{particle.WithRand(particle.NewRand(seed))}, opts...)
	p, err := particle.New(frame, n, px, all...)
	require.NoError(tb, err)
	return p
}

// dist returns the Euclidean distance between a and b.
func dist(a, b particle.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
