package raster

import (
	"fmt"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
)

// Viewport is a rectangular window onto a Device. It borrows the device's
// pixels and never owns them; coordinates passed to Set and Get are local,
// with (0, 0) at the viewport's lower-left corner.
type Viewport struct {
	device    *Device
	lowerLeft DevicePoint
	rows      int
	cols      int
}

// NewViewport checks that [lowerLeft, lowerLeft+extents) lies inside dev.
func NewViewport(lowerLeft DevicePoint, rows, cols int, dev *Device) (*Viewport, error) {
	if dev == nil {
		return nil, fmt.Errorf("raster: viewport needs a device: %w", errs.ErrValidation)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("raster: viewport %dx%d must have positive size: %w", rows, cols, errs.ErrValidation)
	}
	if lowerLeft.X < 0 || lowerLeft.Y < 0 ||
		lowerLeft.X+cols > dev.cols || lowerLeft.Y+rows > dev.rows {
		return nil, fmt.Errorf("raster: viewport at (%d,%d) size %dx%d exceeds device %dx%d: %w",
			lowerLeft.X, lowerLeft.Y, rows, cols, dev.rows, dev.cols, errs.ErrValidation)
	}
	return &Viewport{device: dev, lowerLeft: lowerLeft, rows: rows, cols: cols}, nil
}

// NewViewportFromCorners accepts two opposite corners in any order. Both
// corners are part of the viewport.
func NewViewportFromCorners(p0, p1 DevicePoint, dev *Device) (*Viewport, error) {
	ll := Pt(min(p0.X, p1.X), min(p0.Y, p1.Y))
	cols := abs(p1.X-p0.X) + 1
	rows := abs(p1.Y-p0.Y) + 1
	return NewViewport(ll, rows, cols, dev)
}

// FullViewport covers the whole device.
func FullViewport(dev *Device) *Viewport {
	return &Viewport{device: dev, rows: dev.rows, cols: dev.cols}
}

func (v *Viewport) Rows() int              { return v.rows }
func (v *Viewport) Columns() int           { return v.cols }
func (v *Viewport) LowerLeft() DevicePoint { return v.lowerLeft }
func (v *Viewport) Device() *Device        { return v.device }

// Contains reports whether the local point p lies inside the viewport.
func (v *Viewport) Contains(p DevicePoint) bool {
	return p.X >= 0 && p.X < v.cols && p.Y >= 0 && p.Y < v.rows
}

// ContainsDevice reports whether the device point p lies inside the
// viewport's rectangle.
func (v *Viewport) ContainsDevice(p DevicePoint) bool {
	return v.Contains(Pt(p.X-v.lowerLeft.X, p.Y-v.lowerLeft.Y))
}

// Set writes id at local (x, y).
func (v *Viewport) Set(x, y int, id colors.ColorID) error {
	if !v.Contains(Pt(x, y)) {
		return v.rangeErr(x, y)
	}
	return v.device.Set(x+v.lowerLeft.X, y+v.lowerLeft.Y, id)
}

// Get reads the id at local (x, y).
func (v *Viewport) Get(x, y int) (colors.ColorID, error) {
	if !v.Contains(Pt(x, y)) {
		return 0, v.rangeErr(x, y)
	}
	return v.device.Get(x+v.lowerLeft.X, y+v.lowerLeft.Y)
}

func (v *Viewport) rangeErr(x, y int) error {
	return fmt.Errorf("raster: point (%d,%d) outside viewport %dx%d: %w", x, y, v.rows, v.cols, errs.ErrRange)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
