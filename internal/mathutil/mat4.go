package mathutil

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/errs"
)

// Mat4 is a 4×4 matrix stored row-major. Used for 3D homogeneous transforms.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows is the 4×4 counterpart of Mat3FromRows.
func Mat4FromRows(rows [][]float64) (Mat4, error) {
	var m Mat4
	if len(rows) != 4 {
		return m, fmt.Errorf("mathutil: mat4 needs 4 rows, got %d: %w", len(rows), errs.ErrValidation)
	}
	for r, row := range rows {
		if len(row) != 4 {
			return m, fmt.Errorf("mathutil: mat4 row %d has %d columns: %w", r, len(row), errs.ErrValidation)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return m, fmt.Errorf("mathutil: mat4 entry (%d,%d) not finite: %w", r, c, errs.ErrValidation)
			}
			m[r*4+c] = v
		}
	}
	return m, nil
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Compose4 returns the matrix that applies ms in order: ms[0] first.
func Compose4(ms ...Mat4) Mat4 {
	out := Mat4Identity()
	for _, m := range ms {
		out = Mat4Mul(m, out)
	}
	return out
}

// MulVec4 returns M × v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
