package mathutil

import (
	"fmt"

	"wireframe-renderer/internal/errs"
)

// ObserverTransform builds the change-of-basis matrix for a virtual camera
// looking along normal, oriented by up, and displaced by offset.
//
// The basis is w = normal/|normal|, u = (up × w)/|up × w|, v = w × u, and
// the rows of the result are [u | offset.x], [v | offset.y],
// [w | offset.z], [0 0 0 1]. v needs no normalization since u and w are
// orthonormal.
func ObserverTransform(normal, up, offset Vec3) (Mat4, error) {
	if !normal.IsFinite() || !up.IsFinite() || !offset.IsFinite() {
		return Mat4{}, fmt.Errorf("mathutil: observer vectors must be finite: %w", errs.ErrValidation)
	}
	w, ok := normal.Normalize()
	if !ok {
		return Mat4{}, fmt.Errorf("mathutil: observer normal has zero length: %w", errs.ErrGeometry)
	}
	u, ok := up.Cross(w).Normalize()
	if !ok {
		return Mat4{}, fmt.Errorf("mathutil: observer up is parallel to normal: %w", errs.ErrGeometry)
	}
	v := w.Cross(u)

	return Mat4{
		u[0], u[1], u[2], offset[0],
		v[0], v[1], v[2], offset[1],
		w[0], w[1], w[2], offset[2],
		0, 0, 0, 1,
	}, nil
}
