package mathutil

import "math"

// sinCosDeg returns sin and cos of an angle in degrees. Multiples of 90°
// are exact, so quarter turns map grid points onto grid points.
func sinCosDeg(degrees float64) (s, c float64) {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(radians(d))
}

// rotX is the 3×3 counter-clockwise rotation about X.
func rotX(degrees float64) Mat3 {
	s, c := sinCosDeg(degrees)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

func rotY(degrees float64) Mat3 {
	s, c := sinCosDeg(degrees)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// rotZ doubles as the 2D rotation on homogeneous (x, y, w) points.
func rotZ(degrees float64) Mat3 {
	s, c := sinCosDeg(degrees)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
