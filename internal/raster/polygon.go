package raster

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/geom"
)

// DrawPolygon draws the closed outline through points: an edge between each
// consecutive pair and one from the last point back to the first.
func DrawPolygon(points []DevicePoint, t Target, id colors.ColorID) error {
	segs, err := outline(points, t)
	if err != nil {
		return err
	}
	for _, s := range segs {
		if err := drawLine(s.P0, s.P1, id, t); err != nil {
			return err
		}
	}
	return nil
}

// outline validates points against t and returns the closed edge list.
func outline(points []DevicePoint, t Target) ([]Segment, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("raster: polygon needs at least 2 points, got %d: %w", len(points), errs.ErrValidation)
	}
	for i, p := range points {
		if !t.Contains(p) {
			return nil, fmt.Errorf("raster: polygon vertex %d (%d,%d) outside %dx%d target: %w",
				i, p.X, p.Y, t.Rows(), t.Columns(), errs.ErrRange)
		}
	}
	segs := make([]Segment, len(points))
	for i := range points {
		segs[i] = Segment{P0: points[i], P1: points[(i+1)%len(points)]}
	}
	return segs, nil
}

// ToDevicePoint maps a point of the unit square onto t's pixel grid, with
// (0,0) landing on the first pixel and (1,1) on the last.
func ToDevicePoint(p geom.NormalizedPoint, t Target) DevicePoint {
	return Pt(
		int(math.Round(p.X*float64(t.Columns()-1))),
		int(math.Round(p.Y*float64(t.Rows()-1))),
	)
}

// ToDevicePolygon maps every point with ToDevicePoint.
func ToDevicePolygon(poly []geom.NormalizedPoint, t Target) []DevicePoint {
	out := make([]DevicePoint, len(poly))
	for i, p := range poly {
		out[i] = ToDevicePoint(p, t)
	}
	return out
}

// DrawNormalizedPolygon draws a normalized polygon scaled to fill t.
func DrawNormalizedPolygon(poly []geom.NormalizedPoint, t Target, id colors.ColorID) error {
	for i, p := range poly {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("raster: vertex %d (%v,%v) not normalized: %w", i, p.X, p.Y, errs.ErrRange)
		}
	}
	return DrawPolygon(ToDevicePolygon(poly, t), t, id)
}

// DrawBorder outlines the edge pixels of t.
func DrawBorder(t Target, id colors.ColorID) error {
	right, top := t.Columns()-1, t.Rows()-1
	return DrawLines([]Segment{
		{Pt(0, 0), Pt(right, 0)},
		{Pt(right, 0), Pt(right, top)},
		{Pt(right, top), Pt(0, top)},
		{Pt(0, top), Pt(0, 0)},
	}, id, t)
}
