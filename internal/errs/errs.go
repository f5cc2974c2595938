// Package errs defines the error kinds shared by the rendering pipeline.
//
// Every failure returned by the pipeline wraps exactly one of these sentinels,
// so callers classify with errors.Is rather than by message.
package errs

import "errors"

var (
	// ErrValidation marks malformed construction arguments: non-positive
	// device dimensions, an inverted window, a wrong-shaped matrix.
	ErrValidation = errors.New("validation error")

	// ErrRange marks a coordinate outside a buffer, viewport or window, or a
	// ColorID outside its palette.
	ErrRange = errors.New("range error")

	// ErrGeometry marks degenerate geometry: a zero-length basis vector, a
	// zero homogeneous coordinate, or a point on the projection center plane.
	ErrGeometry = errors.New("geometry error")
)
