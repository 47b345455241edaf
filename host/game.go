package host

import (
	"image"
	"log/slog"

	"github.com/katalvlaran/particles/render"
	"github.com/katalvlaran/particles/sim"
)

// input is what the window reports for one tick.
type input struct {
	spawn  bool        // left button held
	cursor image.Point // cursor in pixels
	quit   bool        // Escape pressed
}

// loop is the backend-independent part of the window game.
type loop struct {
	sys *sim.System
	log *slog.Logger
}

// step runs one tick: a held button spawns one burst at the cursor, then the
// system advances by dt. It reports whether the loop should stop.
func (l *loop) step(in input, dt float64) (stop bool, err error) {
	if in.quit {
		return true, nil
	}
	if in.spawn {
		if _, err = l.sys.Spawn(in.cursor); err != nil {
			return false, err
		}
	}
	if err = l.sys.Update(dt); err != nil {
		return false, err
	}

	return false, nil
}

// fans returns the pixel geometry of every particle in draw order.
func (l *loop) fans() ([]render.FanGeometry, error) {
	frame := l.sys.Frame()
	snaps := l.sys.Snapshots()
	out := make([]render.FanGeometry, 0, len(snaps))
	for _, s := range snaps {
		g, err := render.Fan(s, frame)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// resize tracks the render target size, ignoring non-positive sizes reported
// while the window is minimized.
func (l *loop) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if err := l.sys.Resize(w, h); err != nil {
		l.log.Warn("resize failed", "width", w, "height", h, "err", err)
	}
}
