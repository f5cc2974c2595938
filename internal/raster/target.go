// Package raster owns the pixel buffer and the scan-conversion primitives
// that write to it: Bresenham lines, polygon outlines, and iterative flood
// fill.
//
// None of the primitives synchronize. A Device, and every Viewport onto it,
// must be drawn by one goroutine at a time.
package raster

import "wireframe-renderer/internal/colors"

// Target is anything the rasterizer can draw into: a whole Device or a
// Viewport onto one. Coordinates are local to the target.
type Target interface {
	Rows() int
	Columns() int
	Contains(p DevicePoint) bool
	Set(x, y int, id colors.ColorID) error
	Get(x, y int) (colors.ColorID, error)
}

var (
	_ Target = (*Device)(nil)
	_ Target = (*Viewport)(nil)
)
