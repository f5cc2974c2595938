// Package viewmatrix takes 3D objects from world space to the 2D polygons
// the rasterizer draws: observer (camera) basis change, perspective
// projection, and reduction to homogeneous (x, y, w).
package viewmatrix

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
)

// PerspectiveProjectPoint projects p onto the plane z = zpp as seen from a
// center of projection at depth zcp. x and y are scaled by
// (zpp-zcp)/(z-zcp); the result lies on the projection plane with w = 1.
func PerspectiveProjectPoint(p geom.Point3, zpp, zcp float64) (geom.Point3, error) {
	w := p[3]
	if w == 0 {
		return geom.Point3{}, fmt.Errorf("viewmatrix: point %v has w = 0: %w", p, errs.ErrGeometry)
	}
	x, y, z := p[0]/w, p[1]/w, p[2]/w
	if z == zcp {
		return geom.Point3{}, fmt.Errorf("viewmatrix: point %v lies on projection center plane z = %v: %w",
			p, zcp, errs.ErrGeometry)
	}
	factor := (zpp - zcp) / (z - zcp)
	return geom.Point3{x * factor, y * factor, zpp, 1}, nil
}

// PerspectiveProject projects every vertex of obj. It fails on the first
// vertex that cannot be projected and returns no partial result.
func PerspectiveProject(obj geom.Object3D, zpp, zcp float64) (geom.Object3D, error) {
	if math.IsNaN(zpp) || math.IsNaN(zcp) || zpp == zcp {
		return nil, fmt.Errorf("viewmatrix: zpp %v and zcp %v must differ: %w", zpp, zcp, errs.ErrValidation)
	}
	out := make(geom.Object3D, len(obj))
	for i, face := range obj {
		pf := make(geom.Face, len(face))
		for j, p := range face {
			pp, err := PerspectiveProjectPoint(p, zpp, zcp)
			if err != nil {
				return nil, fmt.Errorf("viewmatrix: face %d vertex %d: %w", i, j, err)
			}
			pf[j] = pp
		}
		out[i] = pf
	}
	return out, nil
}

// ObjectToPolygons drops z from every vertex, giving one (x, y, w) polygon
// per face. Intended for objects already projected onto a constant-z plane.
func ObjectToPolygons(obj geom.Object3D) []geom.Polygon {
	polys := make([]geom.Polygon, len(obj))
	for i, face := range obj {
		poly := make(geom.Polygon, len(face))
		for j, p := range face {
			poly[j] = geom.Point2{p[0], p[1], p[3]}
		}
		polys[i] = poly
	}
	return polys
}

// Camera describes a virtual observer and its projection planes.
type Camera struct {
	Normal mathutil.Vec3
	Up     mathutil.Vec3
	Offset mathutil.Vec3
	ZPP    float64 // projection plane depth
	ZCP    float64 // center of projection depth
}

// DefaultCamera looks down +z with +y up, matching the demo scenes.
func DefaultCamera() Camera {
	return Camera{
		Normal: mathutil.UnitZ,
		Up:     mathutil.UnitY,
		ZPP:    40,
		ZCP:    -45,
	}
}

// Matrix returns the observer transform for c.
func (c Camera) Matrix() (mathutil.Mat4, error) {
	return mathutil.ObserverTransform(c.Normal, c.Up, c.Offset)
}

// Project runs the whole 3D chain: model transform, observer transform,
// perspective projection and reduction to 2D polygons.
func (c Camera) Project(obj geom.Object3D, model mathutil.Mat4) ([]geom.Polygon, error) {
	observer, err := c.Matrix()
	if err != nil {
		return nil, err
	}
	m := observer
	if !model.IsIdentity() {
		m = mathutil.Compose4(model, observer)
	}
	projected, err := PerspectiveProject(geom.TransformObject(obj, m), c.ZPP, c.ZCP)
	if err != nil {
		return nil, err
	}
	return ObjectToPolygons(projected), nil
}
