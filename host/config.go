package host

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/katalvlaran/particles/particle"
	"github.com/katalvlaran/particles/sim"
)

// Defaults applied to zero Config fields.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultHz     = 60
)

// ErrInvalidConfig indicates a Config that cannot be run.
var ErrInvalidConfig = errors.New("host: invalid config")

// Config controls both runners. Zero values select the defaults above.
type Config struct {
	Width  int
	Height int
	Hz     int   // ticks per second
	Seed   int64 // 0 selects the default seed
	Limit  int   // live particle cap, 0 = unbounded
	Burst  int   // particles per spawn event, 0 = sim.DefaultBurst

	// Headless only.
	Ticks      uint64      // stop after N ticks, 0 = run until ctx is done
	SpawnTicks uint64      // spawn one burst per tick for the first N ticks
	SpawnAt    image.Point // spawn pixel; the zero point selects the frame center
	Out        string      // PNG path for the final frame, empty = none

	Logger *slog.Logger // nil = slog.Default()
}

// withDefaults fills zero fields and validates the rest.
func (c Config) withDefaults() (Config, error) {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Hz == 0 {
		c.Hz = DefaultHz
	}
	if c.Burst == 0 {
		c.Burst = sim.DefaultBurst
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	switch {
	case c.Width < 0 || c.Height < 0:
		return c, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Hz < 0:
		return c, fmt.Errorf("%w: hz %d", ErrInvalidConfig, c.Hz)
	case c.Limit < 0:
		return c, fmt.Errorf("%w: limit %d", ErrInvalidConfig, c.Limit)
	case c.Burst < 0:
		return c, fmt.Errorf("%w: burst %d", ErrInvalidConfig, c.Burst)
	}
	if c.SpawnAt == (image.Point{}) {
		c.SpawnAt = image.Pt(c.Width/2, c.Height/2)
	}

	return c, nil
}

// newSystem builds the particle system described by c.
func newSystem(c Config) (*sim.System, error) {
	frame, err := particle.NewFrame(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	return sim.New(frame,
		sim.WithSeed(c.Seed),
		sim.WithLimit(c.Limit),
		sim.WithBurst(c.Burst),
		sim.WithLogger(c.Logger.With("component", "sim")),
	), nil
}
