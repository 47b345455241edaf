// Package sim owns the live particle collection and its per-tick lifecycle.
//
// Each particle moves through Alive (TTL > 0) → Expired (TTL ≤ 0) → Removed.
// The Alive→Expired step happens inside particle.Update; Expired→Removed
// happens in the next System.Update sweep. The sweep visits every element
// exactly once, updates live particles and compacts survivors in place, so a
// tick never skips an element and never reallocates the backing slice.
//
// Spawning is driven from outside (input handling) through Spawn/SpawnAt.
// There is no cap on live particles unless WithLimit is given.
//
// A System is not safe for concurrent use: one goroutine drives
// input → Update → draw per tick.
package sim
