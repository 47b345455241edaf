package particle

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/particles/matrix"
)

// Tunables shared by every particle.
const (
	// TTL is the lifespan of a new particle in seconds.
	TTL = 3.0

	// Gravity is the constant downward acceleration in world units/s².
	Gravity = 2000.0

	// ShrinkFactor is applied once per Update call regardless of dt.
	ShrinkFactor = 0.999

	// MinPoints and MaxPoints bound the random vertex count (inclusive).
	MinPoints = 25
	MaxPoints = 50

	// MinRadius and MaxRadius bound the random per-vertex radius (inclusive).
	MinRadius = 20
	MaxRadius = 80

	// MinSpeed and MaxSpeed bound |vx| and |vy| at spawn (inclusive).
	MinSpeed = 100
	MaxSpeed = 500
)

// Sentinel errors for particle operations.
var (
	// ErrInvalidPointCount indicates a non-positive vertex count at construction.
	// It wraps matrix.ErrInvalidDimensions, so errors.Is matches both.
	ErrInvalidPointCount = fmt.Errorf("particle: point count must be >= 1: %w", matrix.ErrInvalidDimensions)

	// ErrInvalidFrame indicates a render target with a non-positive pixel size.
	ErrInvalidFrame = errors.New("particle: frame size must be > 0")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opRotate    = "Rotate"
	opScale     = "Scale"
	opTranslate = "Translate"
	opUpdate    = "Update"
)

// particleErrorf wraps an underlying error with the given operation tag.
func particleErrorf(op string, err error) error {
	return fmt.Errorf("particle.%s: %w", op, err)
}

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Velocity is a linear velocity in world units per second.
type Velocity struct {
	X, Y float64
}

// Snapshot is the render-facing copy of a particle's state: enough to draw a
// triangle fan with Center as the hub and Vertices as the ordered rim.
type Snapshot struct {
	Center      Point
	Vertices    []Point
	CenterColor color.RGBA
	RimColor    color.RGBA
}
