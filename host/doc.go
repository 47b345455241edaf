// Package host drives the simulation: it owns the frame loop, feeds input to
// the particle system and hands snapshots to a renderer.
//
// RunWindow opens a desktop window through ebiten and measures real elapsed
// time per tick. RunHeadless runs without a display at a fixed step, spawning
// from a scripted position, and can write the last frame as a PNG.
//
// Per tick the order is always input → sim.System.Update → draw, on a single
// goroutine.
package host
