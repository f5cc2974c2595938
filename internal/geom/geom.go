// Package geom holds world-space geometry: homogeneous 2D polygons, 3D faces
// and objects, the Window that frames them, and the normalization that maps
// window coordinates onto the unit square.
package geom

import (
	"fmt"

	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/mathutil"
)

// Point2 is a homogeneous 2D point (x, y, w).
type Point2 = mathutil.Vec3

// Point3 is a homogeneous 3D point (x, y, z, w).
type Point3 = mathutil.Vec4

// P2 returns the 2D point (x, y, 1).
func P2(x, y float64) Point2 {
	return Point2{x, y, 1}
}

// P3 returns the 3D point (x, y, z, 1).
func P3(x, y, z float64) Point3 {
	return mathutil.Point4(x, y, z)
}

// Polygon is an ordered loop of points; the last point implicitly connects
// back to the first.
type Polygon []Point2

// Face is a planar loop of 3D points.
type Face []Point3

// Object3D is a set of faces. Order is preserved so output is deterministic.
type Object3D []Face

// NumVertices counts vertices across all faces.
func (o Object3D) NumVertices() int {
	n := 0
	for _, f := range o {
		n += len(f)
	}
	return n
}

// TransformPolygon returns a new polygon with every point multiplied by m.
func TransformPolygon(poly Polygon, m mathutil.Mat3) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = m.MulVec3(p)
	}
	return out
}

// TransformFace returns a new face with every vertex multiplied by m.
func TransformFace(face Face, m mathutil.Mat4) Face {
	out := make(Face, len(face))
	for i, p := range face {
		out[i] = m.MulVec4(p)
	}
	return out
}

// TransformObject applies m to every vertex of obj. The input is not modified.
func TransformObject(obj Object3D, m mathutil.Mat4) Object3D {
	out := make(Object3D, len(obj))
	for i, f := range obj {
		out[i] = TransformFace(f, m)
	}
	return out
}

// Dehomogenize2 divides x and y by w.
func Dehomogenize2(p Point2) (x, y float64, err error) {
	if p[2] == 0 {
		return 0, 0, fmt.Errorf("geom: point %v has w = 0: %w", p, errs.ErrGeometry)
	}
	return p[0] / p[2], p[1] / p[2], nil
}
