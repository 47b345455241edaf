package particle

import "image"

// Frame maps between render-target pixels and world coordinates.
// Pixel (0,0) is the top-left corner with rows growing downward; the world
// origin sits at the target's center with Y growing upward. One pixel is one
// world unit.
type Frame struct {
	width, height int
}

// NewFrame builds the mapping for a width×height pixel target.
//
// Errors:
//   - ErrInvalidFrame when width or height is not positive.
func NewFrame(width, height int) (Frame, error) {
	if width <= 0 || height <= 0 {
		return Frame{}, ErrInvalidFrame
	}

	return Frame{width: width, height: height}, nil
}

// Size returns the pixel dimensions of the target.
func (f Frame) Size() (width, height int) { return f.width, f.height }

// PixelToWorld maps a pixel position to world coordinates.
func (f Frame) PixelToWorld(px, py float64) Point {
	return Point{
		X: px - float64(f.width)/2,
		Y: float64(f.height)/2 - py,
	}
}

// PixelPointToWorld is PixelToWorld for an integer pixel position.
func (f Frame) PixelPointToWorld(p image.Point) Point {
	return f.PixelToWorld(float64(p.X), float64(p.Y))
}

// WorldToPixel maps a world position to (fractional) pixel coordinates.
func (f Frame) WorldToPixel(p Point) (px, py float64) {
	return p.X + float64(f.width)/2, float64(f.height)/2 - p.Y
}
