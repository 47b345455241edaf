package particle

import (
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/particles/matrix"
)

// Particle is a single polygonal particle. The zero value is not usable;
// construct with New or NewAt.
//
// Invariants:
//   - verts is 2×numPoints for the whole lifetime.
//   - center changes only through Translate, together with verts.
type Particle struct {
	ttl         float64
	numPoints   int
	center      Point
	vel         Velocity
	angularRate float64
	centerColor color.RGBA
	rimColor    color.RGBA
	verts       *matrix.Dense
}

// New builds a particle whose center is the world position of pixel in frame.
// See NewAt for attribute generation.
func New(frame Frame, numPoints int, pixel image.Point, opts ...Option) (*Particle, error) {
	return NewAt(frame.PixelPointToWorld(pixel), numPoints, opts...)
}

// NewAt builds a particle centered on a world position.
//
// Implementation:
//   - Stage 1: validate numPoints ≥ 1 (ErrInvalidPointCount).
//   - Stage 2: draw angular rate, velocity and colors from the RNG unless pinned.
//   - Stage 3: lay rim vertex j at angle θ0 + j·Δθ and a random radius, with
//     Δθ = 2π/(n−1) so the last vertex closes the fan on the first (Δθ = 0 for n = 1).
//
// Complexity: O(numPoints).
func NewAt(center Point, numPoints int, opts ...Option) (*Particle, error) {
	if numPoints < 1 {
		return nil, particleErrorf(opNew, ErrInvalidPointCount)
	}
	o := gatherOptions(opts...)
	rng := o.rng

	p := &Particle{
		ttl:       o.ttl,
		numPoints: numPoints,
		center:    center,
	}

	if o.angularRate != nil {
		p.angularRate = *o.angularRate
	} else {
		p.angularRate = angularRate(rng)
	}
	if o.velocity != nil {
		p.vel = *o.velocity
	} else {
		p.vel.X = signedSpeed(rng)
		p.vel.Y = signedSpeed(rng)
	}
	p.centerColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if o.centerColor != nil {
		p.centerColor = *o.centerColor
	}
	if o.rimColor != nil {
		p.rimColor = *o.rimColor
	} else {
		p.rimColor = rimColor(rng)
	}

	verts, err := matrix.NewDense(2, numPoints)
	if err != nil {
		return nil, particleErrorf(opNew, err)
	}
	theta := startAngle(rng)
	var dTheta float64
	if numPoints > 1 {
		dTheta = 2 * math.Pi / float64(numPoints-1)
	}
	for j := 0; j < numPoints; j++ {
		r := radius(rng)
		if err = verts.Set(0, j, center.X+r*math.Cos(theta)); err != nil {
			return nil, particleErrorf(opNew, err)
		}
		if err = verts.Set(1, j, center.Y+r*math.Sin(theta)); err != nil {
			return nil, particleErrorf(opNew, err)
		}
		theta += dTheta
	}
	p.verts = verts

	return p, nil
}

// Update advances the particle by dt seconds.
//
// The lifetime is decremented first; once it is ≤ 0 the call leaves the pose
// untouched, so an expired particle is drawn one last time at its final pose.
// Otherwise: rotate by dt·ω, shrink by ShrinkFactor, integrate gravity into
// vy, then translate by the updated velocity.
func (p *Particle) Update(dt float64) error {
	p.ttl -= dt
	if p.ttl <= 0 {
		return nil
	}

	if err := p.Rotate(dt * p.angularRate); err != nil {
		return particleErrorf(opUpdate, err)
	}
	if err := p.Scale(ShrinkFactor); err != nil {
		return particleErrorf(opUpdate, err)
	}

	dx := p.vel.X * dt
	p.vel.Y -= Gravity * dt
	dy := p.vel.Y * dt
	if err := p.Translate(dx, dy); err != nil {
		return particleErrorf(opUpdate, err)
	}

	return nil
}

// Rotate turns every vertex counter-clockwise by theta radians about the
// particle's center. The center does not move.
func (p *Particle) Rotate(theta float64) error {
	if err := p.aboutCenter(matrix.NewRotation(theta)); err != nil {
		return particleErrorf(opRotate, err)
	}
	return nil
}

// Scale moves every vertex toward (c < 1) or away from (c > 1) the center by
// factor c. The center does not move.
func (p *Particle) Scale(c float64) error {
	if err := p.aboutCenter(matrix.NewScaling(c)); err != nil {
		return particleErrorf(opScale, err)
	}
	return nil
}

// aboutCenter applies the 2×2 transform t with the center as pivot:
// shift by −center, left-multiply by t, shift by +center.
// verts is replaced only when every step succeeded.
func (p *Particle) aboutCenter(t *matrix.Dense) error {
	local, err := matrix.BroadcastAddRows(p.verts, []float64{-p.center.X, -p.center.Y})
	if err != nil {
		return err
	}
	moved, err := matrix.Mul(t, local)
	if err != nil {
		return err
	}
	world, err := matrix.BroadcastAddRows(moved, []float64{p.center.X, p.center.Y})
	if err != nil {
		return err
	}
	p.verts = world

	return nil
}

// Translate shifts every vertex and the center by (dx, dy).
func (p *Particle) Translate(dx, dy float64) error {
	t, err := matrix.NewTranslation(dx, dy, p.verts.Cols())
	if err != nil {
		return particleErrorf(opTranslate, err)
	}
	moved, err := matrix.Add(t, p.verts)
	if err != nil {
		return particleErrorf(opTranslate, err)
	}
	p.verts = moved
	p.center.X += dx
	p.center.Y += dy

	return nil
}

// TTL returns the remaining lifetime in seconds.
func (p *Particle) TTL() float64 { return p.ttl }

// Alive reports whether the particle still has lifetime left.
func (p *Particle) Alive() bool { return p.ttl > 0 }

// Center returns the current center in world coordinates.
func (p *Particle) Center() Point { return p.center }

// Velocity returns the current linear velocity.
func (p *Particle) Velocity() Velocity { return p.vel }

// AngularRate returns the rotation speed in rad/s.
func (p *Particle) AngularRate() float64 { return p.angularRate }

// NumPoints returns the number of rim vertices.
func (p *Particle) NumPoints() int { return p.numPoints }

// Colors returns the center and rim colors.
func (p *Particle) Colors() (center, rim color.RGBA) { return p.centerColor, p.rimColor }

// Matrix returns a copy of the 2×N vertex matrix.
func (p *Particle) Matrix() *matrix.Dense {
	return p.verts.Clone().(*matrix.Dense)
}

// Vertices returns a copy of the rim vertices in order.
func (p *Particle) Vertices() []Point {
	out := make([]Point, p.verts.Cols())
	xs, _ := p.verts.Row(0)
	ys, _ := p.verts.Row(1)
	for j := range out {
		out[j] = Point{X: xs[j], Y: ys[j]}
	}
	return out
}

// Snapshot exports the state a renderer needs. The returned value shares no
// memory with the particle.
func (p *Particle) Snapshot() Snapshot {
	return Snapshot{
		Center:      p.center,
		Vertices:    p.Vertices(),
		CenterColor: p.centerColor,
		RimColor:    p.rimColor,
	}
}
