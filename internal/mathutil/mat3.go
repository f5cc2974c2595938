package mathutil

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/errs"
)

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// It carries 2D homogeneous transforms and 3D rotations.
// Value type for zero heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3FromRows builds a matrix from caller-supplied rows, rejecting anything
// that is not exactly 3×3 and finite.
func Mat3FromRows(rows [][]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != 3 {
		return m, fmt.Errorf("mathutil: mat3 needs 3 rows, got %d: %w", len(rows), errs.ErrValidation)
	}
	for r, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("mathutil: mat3 row %d has %d columns: %w", r, len(row), errs.ErrValidation)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return m, fmt.Errorf("mathutil: mat3 entry (%d,%d) not finite: %w", r, c, errs.ErrValidation)
			}
			m[r*3+c] = v
		}
	}
	return m, nil
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// Compose3 returns the matrix that applies ms in order: ms[0] first.
func Compose3(ms ...Mat3) Mat3 {
	out := Mat3Identity()
	for _, m := range ms {
		out = Mat3Mul(m, out)
	}
	return out
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
