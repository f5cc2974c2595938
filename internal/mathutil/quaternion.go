package mathutil

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/errs"
)

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// AxisAngleQuat returns the unit quaternion rotating by angle radians
// counter-clockwise around axis (right-hand rule).
func AxisAngleQuat(axis Vec3, angle float64) (Quat, error) {
	n, ok := axis.Normalize()
	if !ok {
		return Quat{}, fmt.Errorf("mathutil: rotation axis has zero length: %w", errs.ErrGeometry)
	}
	s, c := math.Sincos(angle * 0.5)
	v := n.Scale(s)
	return Quat{v[0], v[1], v[2], c}, nil
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
