// Package particle - RNG utilities for spawn-time attributes.
//
// Goals:
//   - Determinism: same seed ⇒ identical particles across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package particle

import (
	"image/color"
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// RandomPointCount draws a vertex count uniformly from [MinPoints, MaxPoints].
func RandomPointCount(rng *rand.Rand) int {
	return intInclusive(rng, MinPoints, MaxPoints)
}

// intInclusive draws uniformly from [lo, hi].
func intInclusive(rng *rand.Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}

// signedSpeed draws |v| from [MinSpeed, MaxSpeed] and flips its sign with
// probability 1/2.
func signedSpeed(rng *rand.Rand) float64 {
	v := float64(intInclusive(rng, MinSpeed, MaxSpeed))
	if rng.Intn(2) == 1 {
		v = -v
	}
	return v
}

// angularRate draws a rotation speed in [0, π) rad/s.
func angularRate(rng *rand.Rand) float64 {
	return rng.Float64() * math.Pi
}

// startAngle draws the polar angle of the first rim vertex in [0, π/2).
func startAngle(rng *rand.Rand) float64 {
	return rng.Float64() * math.Pi / 2
}

// radius draws a rim vertex distance from [MinRadius, MaxRadius].
func radius(rng *rand.Rand) float64 {
	return float64(intInclusive(rng, MinRadius, MaxRadius))
}

// rimColor draws an opaque random RGB color.
func rimColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 0xff,
	}
}
