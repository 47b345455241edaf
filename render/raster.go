package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/particles/particle"
)

// ErrInvalidSize indicates a non-positive raster size.
var ErrInvalidSize = errors.New("render: width and height must be > 0")

// Rasterizer draws particle snapshots into an offscreen gg context.
// It is not safe for concurrent use.
type Rasterizer struct {
	dc     *gg.Context
	width  int
	height int
}

// NewRasterizer allocates a width×height software canvas.
func NewRasterizer(width, height int) (*Rasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render.NewRasterizer: %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Rasterizer{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}, nil
}

// Size returns the canvas size in pixels.
func (r *Rasterizer) Size() (width, height int) { return r.width, r.height }

// Draw clears the canvas to black and fills every snapshot in order, so later
// particles paint over earlier ones.
func (r *Rasterizer) Draw(snapshots []particle.Snapshot, frame particle.Frame) error {
	r.dc.ClearWithColor(gg.Black)
	for i, s := range snapshots {
		g, err := Fan(s, frame)
		if err != nil {
			return fmt.Errorf("render.Draw: particle %d: %w", i, err)
		}
		if err = r.fill(g); err != nil {
			return fmt.Errorf("render.Draw: particle %d: %w", i, err)
		}
	}

	return nil
}

// fill paints the rim polygon with a radial gradient from the fan's center
// color to its rim color. Rim vertices are angularly ordered around the
// center, so the polygon covers exactly the fan's triangles.
func (r *Rasterizer) fill(g FanGeometry) error {
	if len(g.Vertices) < 3 {
		return nil // no triangles
	}
	hub := g.Vertices[0]
	rim := g.Vertices[1:]

	var reach float64
	for _, v := range rim {
		reach = math.Max(reach, math.Hypot(v.X-hub.X, v.Y-hub.Y))
	}
	if reach > 0 {
		r.dc.SetFillBrush(gg.NewRadialGradientBrush(hub.X, hub.Y, 0, reach).
			AddColorStop(0, gg.FromColor(hub.Color)).
			AddColorStop(1, gg.FromColor(rim[0].Color)))
	} else {
		r.dc.SetFillBrush(gg.SolidBrush{Color: gg.FromColor(rim[0].Color)})
	}

	r.dc.MoveTo(rim[0].X, rim[0].Y)
	for _, v := range rim[1:] {
		r.dc.LineTo(v.X, v.Y)
	}
	r.dc.ClosePath()

	return r.dc.Fill()
}

// Image returns the current canvas.
func (r *Rasterizer) Image() image.Image { return r.dc.Image() }

// SavePNG writes the current canvas to path.
func (r *Rasterizer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render.SavePNG: %w", err)
	}
	return nil
}

// Close releases the drawing context. The Rasterizer must not be used after.
func (r *Rasterizer) Close() error {
	return r.dc.Close()
}
