// Package render turns particle snapshots into drawable geometry.
//
// Fan builds a pixel-space triangle fan per particle: vertex 0 is the center
// (center color), vertices 1..n are the rim in order (rim color) and the
// triangles are (0, j, j+1). Window hosts feed that geometry to the GPU
// directly.
//
// Rasterizer draws the same fans in software on a github.com/gogpu/gg context,
// filling each polygon with a radial gradient from the center color to the rim
// color over a black background. Headless runs use it to write PNG frames.
package render
