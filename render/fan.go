package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/katalvlaran/particles/particle"
)

// ErrFanTooLarge indicates a particle with more rim vertices than a 16-bit
// index list can address.
var ErrFanTooLarge = errors.New("render: fan exceeds 16-bit index range")

// Vertex is one fan vertex in pixel coordinates.
type Vertex struct {
	X, Y  float64
	Color color.RGBA
}

// FanGeometry is a triangle fan ready for submission. Indices come in
// triples.
type FanGeometry struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangles returns the number of triangles in the fan.
func (g FanGeometry) Triangles() int { return len(g.Indices) / 3 }

// Fan builds the pixel-space triangle fan of one particle snapshot.
// A snapshot without rim vertices yields empty geometry.
func Fan(s particle.Snapshot, frame particle.Frame) (FanGeometry, error) {
	n := len(s.Vertices)
	if n == 0 {
		return FanGeometry{}, nil
	}
	if n+1 > math.MaxUint16 {
		return FanGeometry{}, fmt.Errorf("render.Fan: %d vertices: %w", n, ErrFanTooLarge)
	}

	verts := make([]Vertex, 0, n+1)
	cx, cy := frame.WorldToPixel(s.Center)
	verts = append(verts, Vertex{X: cx, Y: cy, Color: s.CenterColor})
	for _, v := range s.Vertices {
		x, y := frame.WorldToPixel(v)
		verts = append(verts, Vertex{X: x, Y: y, Color: s.RimColor})
	}

	idx := make([]uint16, 0, 3*(n-1))
	for j := 1; j < n; j++ {
		idx = append(idx, 0, uint16(j), uint16(j+1))
	}

	return FanGeometry{Vertices: verts, Indices: idx}, nil
}
