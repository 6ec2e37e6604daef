package slider

import "errors"

// Configuration errors. They are returned to the integrator; the slider never
// computes with an invalid range.
var (
	ErrInvalidRange = errors.New("max must be greater than min")
	ErrInvalidStep  = errors.New("step must be a positive number")
	ErrDestroyed    = errors.New("slider destroyed")
)
