// Package particles is a small 2D particle toy built on a hand-rolled matrix
// engine: short-lived polygonal particles spin, shrink and fall under gravity
// until their lifetime runs out.
//
// 🚀 What is in the box?
//
//	• matrix/    : dense row-major matrices: Add, Mul, Equal, rotation/scaling/translation
//	• particle/  : one particle: spawn attributes, pivot transforms, Update(dt)
//	• sim/       : the live collection: spawn bursts, single-pass lifecycle sweep
//	• render/    : triangle-fan geometry + software rasterizer (gogpu/gg) to PNG
//	• host/      : frame loops: ebiten window or headless fixed-step runner
//	• cmd/particles : the command-line entry point
//
// ✨ Coordinate system
//
// World space has its origin at the center of the render target with Y up.
// particle.Frame converts between pixels and world units; everything in
// matrix, particle and sim works in world units only.
//
// Quick start:
//
//	go run ./cmd/particles               # window, hold the left mouse button
//	go run ./cmd/particles -headless -ticks 120 -out frame.png
package particles
