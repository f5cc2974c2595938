package geom

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/errs"
)

// Window is a world-space axis-aligned rectangle.
type Window struct {
	minX, minY, maxX, maxY float64
}

// NewWindow requires finite bounds with minX < maxX and minY < maxY.
func NewWindow(minX, minY, maxX, maxY float64) (Window, error) {
	for _, v := range [4]float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Window{}, fmt.Errorf("geom: window bound %v not finite: %w", v, errs.ErrValidation)
		}
	}
	if minX >= maxX || minY >= maxY {
		return Window{}, fmt.Errorf("geom: window (%v,%v)-(%v,%v) is empty or inverted: %w",
			minX, minY, maxX, maxY, errs.ErrValidation)
	}
	return Window{minX: minX, minY: minY, maxX: maxX, maxY: maxY}, nil
}

func (w Window) MinX() float64 { return w.minX }
func (w Window) MinY() float64 { return w.minY }
func (w Window) MaxX() float64 { return w.maxX }
func (w Window) MaxY() float64 { return w.maxY }

// LowerLeft returns the (minX, minY) corner as a homogeneous point.
func (w Window) LowerLeft() Point2 { return P2(w.minX, w.minY) }

// UpperRight returns the (maxX, maxY) corner as a homogeneous point.
func (w Window) UpperRight() Point2 { return P2(w.maxX, w.maxY) }

// Contains reports whether (x, y) lies in the window, bounds included.
func (w Window) Contains(x, y float64) bool {
	return x >= w.minX && x <= w.maxX && y >= w.minY && y <= w.maxY
}

// NormalizedPoint is a point on the unit square [0,1]×[0,1].
type NormalizedPoint struct {
	X, Y float64
}

// Normalize maps p from window coordinates onto the unit square.
// Points outside the window are rejected, never extrapolated.
func Normalize(p Point2, w Window) (NormalizedPoint, error) {
	x, y, err := Dehomogenize2(p)
	if err != nil {
		return NormalizedPoint{}, err
	}
	if !w.Contains(x, y) {
		return NormalizedPoint{}, fmt.Errorf("geom: point (%v,%v) outside window (%v,%v)-(%v,%v): %w",
			x, y, w.minX, w.minY, w.maxX, w.maxY, errs.ErrRange)
	}
	return NormalizedPoint{
		X: (x - w.minX) / (w.maxX - w.minX),
		Y: (y - w.minY) / (w.maxY - w.minY),
	}, nil
}

// NormalizePolygon normalizes every point, keeping order. The loop is not
// closed and duplicates are kept.
func NormalizePolygon(poly Polygon, w Window) ([]NormalizedPoint, error) {
	out := make([]NormalizedPoint, len(poly))
	for i, p := range poly {
		np, err := Normalize(p, w)
		if err != nil {
			return nil, fmt.Errorf("geom: polygon vertex %d: %w", i, err)
		}
		out[i] = np
	}
	return out, nil
}
