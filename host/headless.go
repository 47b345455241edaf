package host

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/particles/render"
	"github.com/katalvlaran/particles/sim"
)

// RunHeadless runs the simulation without opening a window, one tick per
// 1/Hz of wall time with a fixed step dt = 1/Hz. It returns the final
// counters once Ticks are done; on context cancellation it returns ctx.Err().
// When cfg.Out is set the last frame is rasterized to that PNG path.
func RunHeadless(ctx context.Context, cfg Config) (sim.Stats, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return sim.Stats{}, err
	}
	sys, err := newSystem(cfg)
	if err != nil {
		return sim.Stats{}, err
	}
	log := cfg.Logger
	log.Info("headless run", "hz", cfg.Hz, "ticks", cfg.Ticks, "spawn_ticks", cfg.SpawnTicks,
		"x", cfg.SpawnAt.X, "y", cfg.SpawnAt.Y)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return sim.Stats{}, fmt.Errorf("%w: hz %d", ErrInvalidConfig, cfg.Hz)
	}
	dt := 1 / float64(cfg.Hz)
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for cfg.Ticks == 0 || tick < cfg.Ticks {
		select {
		case <-ctx.Done():
			return sys.Stats(), ctx.Err()
		case <-t.C:
		}
		if tick < cfg.SpawnTicks {
			if _, err = sys.Spawn(cfg.SpawnAt); err != nil {
				return sys.Stats(), err
			}
		}
		if err = sys.Update(dt); err != nil {
			return sys.Stats(), err
		}
		tick++
	}

	st := sys.Stats()
	log.Info("headless run finished", "ticks", st.Ticks, "spawned", st.Spawned,
		"removed", st.Removed, "dropped", st.Dropped, "live", st.Live)

	if cfg.Out != "" {
		if err = writeFrame(sys, cfg.Out); err != nil {
			return st, err
		}
		log.Info("frame written", "path", cfg.Out)
	}

	return st, nil
}

// writeFrame rasterizes the current particles to a PNG file.
func writeFrame(sys *sim.System, path string) error {
	w, h := sys.Frame().Size()
	ras, err := render.NewRasterizer(w, h)
	if err != nil {
		return err
	}
	defer ras.Close()

	if err = ras.Draw(sys.Snapshots(), sys.Frame()); err != nil {
		return err
	}
	return ras.SavePNG(path)
}
