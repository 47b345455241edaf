// Package particle models one short-lived polygonal particle: a fan of rim
// vertices around a tracked center that spins, shrinks and falls under
// gravity until its time to live runs out.
//
// 🚀 What is a Particle?
//
//	A 2×N vertex matrix in world coordinates (column j = rim vertex j), a
//	center point, a velocity, an angular rate, a remaining lifetime and two
//	colors (center, rim). World coordinates put the origin at the middle of
//	the render target with Y pointing up; Frame maps pixels to world and back.
//
// ✨ Update pipeline (per call, while TTL > 0):
//  1. rotate about the center by dt × angular rate;
//  2. scale about the center by ShrinkFactor (once per call, NOT per second);
//  3. vy -= Gravity × dt (velocity first: semi-implicit Euler);
//  4. translate vertices AND center by (vx × dt, vy × dt).
//
// Rotation and scaling pivot on the center: vertices are shifted by −center,
// transformed by a 2×2 matrix, and shifted back. Only Translate moves the
// center, and it always moves the vertices by the identical offset.
//
// ⚙️ Usage:
//
//	frame, _ := particle.NewFrame(1920, 1080)
//	rng := particle.NewRand(42)
//	p, err := particle.New(frame, 30, image.Pt(960, 540), particle.WithRand(rng))
//	for p.Alive() {
//		_ = p.Update(1.0 / 60)
//	}
//
// Attribute randomness comes from an explicitly owned *rand.Rand (WithRand);
// a fixed seed yields identical particles across runs.
package particle
