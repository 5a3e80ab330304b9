package core

import "github.com/pkg/errors"

// Sentinel error kinds. NoPath and HeuristicUnreachable are not
// errors: they degrade to a nil *Path return instead.
var (
	// ErrInvalidInput covers non-finite pose components, non-positive
	// resolutions, inconsistent obstacle bounds, and malformed vehicle
	// geometry.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMotionModelMismatch is raised by a motion model (the baseline
	// bicycle model or the tractor-trailer extension) when a
	// caller-supplied state vector's length does not match the model's
	// StateSize.
	ErrMotionModelMismatch = errors.New("motion model state size mismatch")
)

func errInvalidInputf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

func errMotionModelMismatchf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMotionModelMismatch, format, args...)
}
