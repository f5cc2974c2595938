package raster

import (
	"fmt"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
)

// DevicePoint is an integer pixel coordinate. x grows right, y grows up from
// the bottom-left corner.
type DevicePoint struct {
	X, Y int
}

// Pt is shorthand for DevicePoint{x, y}.
func Pt(x, y int) DevicePoint {
	return DevicePoint{X: x, Y: y}
}

// Device owns a row-major buffer of ColorIDs. Dimensions are fixed at
// creation. A Device is not safe for concurrent mutation.
type Device struct {
	rows int
	cols int
	buf  []colors.ColorID // len = rows*cols, index = y*cols + x
}

// NewDevice allocates a device with every pixel set to ColorID 0.
func NewDevice(rows, cols int) (*Device, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("raster: device %dx%d must have positive size: %w", rows, cols, errs.ErrValidation)
	}
	return &Device{
		rows: rows,
		cols: cols,
		buf:  make([]colors.ColorID, rows*cols),
	}, nil
}

func (d *Device) Rows() int    { return d.rows }
func (d *Device) Columns() int { return d.cols }

// Contains reports whether p addresses a pixel of d.
func (d *Device) Contains(p DevicePoint) bool {
	return p.X >= 0 && p.X < d.cols && p.Y >= 0 && p.Y < d.rows
}

// Set writes id at (x, y).
func (d *Device) Set(x, y int, id colors.ColorID) error {
	if !d.Contains(Pt(x, y)) {
		return d.rangeErr(x, y)
	}
	d.buf[y*d.cols+x] = id
	return nil
}

// Get reads the id at (x, y).
func (d *Device) Get(x, y int) (colors.ColorID, error) {
	if !d.Contains(Pt(x, y)) {
		return 0, d.rangeErr(x, y)
	}
	return d.buf[y*d.cols+x], nil
}

// Clear sets every pixel to id.
func (d *Device) Clear(id colors.ColorID) {
	for i := range d.buf {
		d.buf[i] = id
	}
}

// RawView exposes the backing buffer, row-major with row 0 at the bottom,
// for export. Callers must treat it as read-only.
func (d *Device) RawView() []colors.ColorID {
	return d.buf
}

func (d *Device) rangeErr(x, y int) error {
	return fmt.Errorf("raster: point (%d,%d) outside device %dx%d: %w", x, y, d.rows, d.cols, errs.ErrRange)
}
