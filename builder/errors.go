package builder

import "errors"

var (
	// ErrWheelCount indicates a car with fewer than three wheels.
	ErrWheelCount = errors.New("builder: car needs at least three wheels")
	// ErrSeatCount indicates a car with no seats.
	ErrSeatCount = errors.New("builder: car needs at least one seat")
	// ErrNoColour indicates Build was called before a colour was chosen.
	ErrNoColour = errors.New("builder: car colour not set")
)
