//go:build cgo

package host

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/particles/internal/buildinfo"
)

// RunWindow opens a resizable desktop window and runs until it is closed or
// Escape is pressed. The left mouse button spawns bursts at the cursor.
func RunWindow(cfg Config) error {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}
	sys, err := newSystem(cfg)
	if err != nil {
		return err
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	g := &windowGame{
		loop:  loop{sys: sys, log: cfg.Logger},
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	ebiten.SetWindowTitle("particles (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)

	cfg.Logger.Info("window run", "width", cfg.Width, "height", cfg.Height, "tps", cfg.Hz)
	if err = ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	st := sys.Stats()
	cfg.Logger.Info("window closed", "ticks", st.Ticks, "spawned", st.Spawned, "removed", st.Removed)

	return nil
}

type windowGame struct {
	loop
	white *ebiten.Image
	last  time.Time
	verts []ebiten.Vertex
}

func (g *windowGame) Update() error {
	now := time.Now()
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	x, y := ebiten.CursorPosition()
	in := input{
		spawn:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		cursor: image.Pt(x, y),
		quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	stop, err := g.step(in, dt)
	if err != nil {
		return err
	}
	if stop {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	fans, err := g.fans()
	if err != nil {
		g.log.Error("draw", "err", err)
		return
	}
	for _, f := range fans {
		g.verts = g.verts[:0]
		for _, v := range f.Vertices {
			g.verts = append(g.verts, ebiten.Vertex{
				DstX:   float32(v.X),
				DstY:   float32(v.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(v.Color.R) / 0xff,
				ColorG: float32(v.Color.G) / 0xff,
				ColorB: float32(v.Color.B) / 0xff,
				ColorA: float32(v.Color.A) / 0xff,
			})
		}
		screen.DrawTriangles(g.verts, f.Indices, g.white, nil)
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
