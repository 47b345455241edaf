package sim

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/particles/particle"
)

// Sentinel errors for lifecycle operations.
var (
	// ErrInvalidStep indicates a NaN, infinite or negative dt.
	ErrInvalidStep = errors.New("sim: dt must be finite and >= 0")

	// ErrInvalidCount indicates a negative spawn count.
	ErrInvalidCount = errors.New("sim: spawn count must be >= 0")
)

// simErrorf wraps an underlying error with the given operation tag.
func simErrorf(op string, err error) error {
	return fmt.Errorf("sim.%s: %w", op, err)
}

// Stats counts lifecycle events since the System was created.
type Stats struct {
	Ticks   uint64 // completed Update sweeps
	Spawned uint64 // particles inserted
	Dropped uint64 // spawns refused by the limit
	Removed uint64 // expired particles swept out
	Live    int    // current collection size
}

// System is the ordered collection of live particles. Insertion order is the
// draw order (oldest first).
type System struct {
	frame     particle.Frame
	rng       *rand.Rand
	burst     int
	limit     int
	log       *slog.Logger
	particles []*particle.Particle
	stats     Stats
}

// New creates an empty System spawning into frame.
func New(frame particle.Frame, opts ...Option) *System {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = particle.NewRand(0)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	w, h := frame.Size()
	o.logger.Info("particle system created", "width", w, "height", h, "burst", o.burst, "limit", o.limit)

	return &System{
		frame: frame,
		rng:   o.rng,
		burst: o.burst,
		limit: o.limit,
		log:   o.logger,
	}
}

// Frame returns the coordinate frame used for pixel spawns.
func (s *System) Frame() particle.Frame { return s.frame }

// Resize replaces the frame after the render target changed size. Live
// particles keep their world coordinates.
func (s *System) Resize(width, height int) error {
	f, err := particle.NewFrame(width, height)
	if err != nil {
		return simErrorf("Resize", err)
	}
	if f != s.frame {
		s.log.Info("frame resized", "width", width, "height", height)
	}
	s.frame = f

	return nil
}

// Spawn inserts one burst of particles at a pixel position of the frame.
// It returns how many particles were inserted.
func (s *System) Spawn(pixel image.Point) (int, error) {
	return s.SpawnAt(s.frame.PixelPointToWorld(pixel), s.burst)
}

// SpawnN inserts n particles at a pixel position of the frame.
func (s *System) SpawnN(n int, pixel image.Point) (int, error) {
	return s.SpawnAt(s.frame.PixelPointToWorld(pixel), n)
}

// SpawnAt inserts n particles centered on a world position, each with a
// random vertex count in [particle.MinPoints, particle.MaxPoints]. When a
// limit is set, insertions past it are dropped and counted in Stats.Dropped.
func (s *System) SpawnAt(center particle.Point, n int) (int, error) {
	if n < 0 {
		return 0, simErrorf("SpawnAt", ErrInvalidCount)
	}

	inserted := 0
	for i := 0; i < n; i++ {
		if s.limit > 0 && len(s.particles) >= s.limit {
			dropped := n - i
			s.stats.Dropped += uint64(dropped)
			s.log.Warn("particle limit reached", "limit", s.limit, "dropped", dropped)
			break
		}
		p, err := particle.NewAt(center, particle.RandomPointCount(s.rng), particle.WithRand(s.rng))
		if err != nil {
			return inserted, simErrorf("SpawnAt", err)
		}
		s.particles = append(s.particles, p)
		inserted++
	}
	s.stats.Spawned += uint64(inserted)
	s.log.Debug("spawn", "x", center.X, "y", center.Y, "inserted", inserted, "live", len(s.particles))

	return inserted, nil
}

// Insert appends already-built particles, honoring the limit. Nil entries are
// skipped. It returns how many were inserted.
func (s *System) Insert(ps ...*particle.Particle) int {
	inserted := 0
	for i, p := range ps {
		if p == nil {
			continue
		}
		if s.limit > 0 && len(s.particles) >= s.limit {
			dropped := len(ps) - i
			s.stats.Dropped += uint64(dropped)
			s.log.Warn("particle limit reached", "limit", s.limit, "dropped", dropped)
			break
		}
		s.particles = append(s.particles, p)
		inserted++
	}
	s.stats.Spawned += uint64(inserted)

	return inserted
}

// Update runs one lifecycle sweep with step dt (seconds).
//
// Implementation:
//   - Stage 1: validate dt.
//   - Stage 2: walk the slice once with a read index and a write index;
//     particles with TTL ≤ 0 are dropped, the rest are updated and kept.
//   - Stage 3: clear the vacated tail so removed particles can be collected.
//
// A particle that expires during this sweep stays in the collection (posed as
// it was before expiring) and is removed by the next sweep.
//
// Complexity: O(n) time, no allocation.
func (s *System) Update(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return simErrorf("Update", ErrInvalidStep)
	}

	ps := s.particles
	w := 0
	var removed int
	for r := 0; r < len(ps); r++ {
		p := ps[r]
		if p.TTL() <= 0 {
			removed++
			continue
		}
		if err := p.Update(dt); err != nil {
			// keep the unvisited tail so the collection stays consistent
			w += copy(ps[w:], ps[r:])
			s.truncate(w)
			s.stats.Removed += uint64(removed)
			return simErrorf("Update", err)
		}
		ps[w] = p
		w++
	}
	s.truncate(w)

	s.stats.Ticks++
	s.stats.Removed += uint64(removed)
	if removed > 0 {
		s.log.Debug("sweep", "tick", s.stats.Ticks, "removed", removed, "live", w)
	}

	return nil
}

// truncate shrinks the collection to n, clearing the vacated tail.
func (s *System) truncate(n int) {
	clear(s.particles[n:])
	s.particles = s.particles[:n]
}

// Len returns the number of particles in the collection, including ones that
// expired during the last sweep.
func (s *System) Len() int { return len(s.particles) }

// Stats returns lifecycle counters.
func (s *System) Stats() Stats {
	st := s.stats
	st.Live = len(s.particles)
	return st
}

// Snapshots exports the render state of every particle in draw order.
func (s *System) Snapshots() []particle.Snapshot {
	out := make([]particle.Snapshot, len(s.particles))
	for i, p := range s.particles {
		out[i] = p.Snapshot()
	}
	return out
}

// Reset removes every particle.
func (s *System) Reset() {
	s.truncate(0)
}
