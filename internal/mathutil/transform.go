package mathutil

import (
	"fmt"

	"wireframe-renderer/internal/errs"
)

// 2D builders operate on homogeneous (x, y, w) points.

// Translation2D moves points by (dx, dy).
func Translation2D(dx, dy float64) Mat3 {
	return Mat3{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	}
}

// Rotation2D rotates counter-clockwise about the origin. Angle in degrees.
func Rotation2D(degrees float64) Mat3 {
	return rotZ(degrees)
}

// Scale2D scales about the origin.
func Scale2D(sx, sy float64) Mat3 {
	return Mat3Diag(sx, sy, 1)
}

// 3D builders operate on homogeneous (x, y, z, w) points.

// Translation3D moves points by (dx, dy, dz).
func Translation3D(dx, dy, dz float64) Mat4 {
	return FromMat3Translation(Mat3Identity(), Vec3{dx, dy, dz})
}

// Scale3D scales about the origin.
func Scale3D(sx, sy, sz float64) Mat4 {
	return FromMat3Translation(Mat3Diag(sx, sy, sz), Vec3{})
}

// RotationX, RotationY and RotationZ rotate counter-clockwise about an axis
// through the origin. Angles in degrees.
func RotationX(degrees float64) Mat4 {
	return FromMat3Translation(rotX(degrees), Vec3{})
}

func RotationY(degrees float64) Mat4 {
	return FromMat3Translation(rotY(degrees), Vec3{})
}

func RotationZ(degrees float64) Mat4 {
	return FromMat3Translation(rotZ(degrees), Vec3{})
}

// Rotation3D rotates about one of the coordinate axes.
func Rotation3D(degrees float64, axis Axis) (Mat4, error) {
	switch axis {
	case AxisX:
		return RotationX(degrees), nil
	case AxisY:
		return RotationY(degrees), nil
	case AxisZ:
		return RotationZ(degrees), nil
	}
	return Mat4{}, fmt.Errorf("mathutil: unknown axis %d: %w", int(axis), errs.ErrValidation)
}

// RotationAbout rotates about an arbitrary axis through the origin.
func RotationAbout(degrees float64, axis Vec3) (Mat4, error) {
	q, err := AxisAngleQuat(axis, radians(degrees))
	if err != nil {
		return Mat4{}, err
	}
	return FromMat3Translation(QuatToMat3(q), Vec3{}), nil
}
