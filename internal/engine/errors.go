package engine

import "errors"

var (
	// ErrInvalidDimensions reports a non-positive row or column count.
	ErrInvalidDimensions = errors.New("rows and cols must be positive")
	// ErrOutOfRangeSeed reports a seed cell outside the grid interior.
	ErrOutOfRangeSeed = errors.New("seed cell outside interior")
	// ErrInvalidStepCount reports a negative number of generations.
	ErrInvalidStepCount = errors.New("step count must not be negative")
	// ErrInvalidSeedCount reports a negative random sample count.
	ErrInvalidSeedCount = errors.New("seed count must not be negative")
	// ErrUnknownRule reports a catalog lookup miss.
	ErrUnknownRule = errors.New("unknown rule")
)
