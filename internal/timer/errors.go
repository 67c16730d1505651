package timer

import "errors"

var (
	// ErrInvalidInput is returned when a timer is created with an empty name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when an operation targets an id that is not in
	// the active set (already stopped or cancelled, possibly by another
	// session).
	ErrNotFound = errors.New("timer not found")

	// ErrAmbiguous is returned when an id prefix matches more than one
	// active timer.
	ErrAmbiguous = errors.New("ambiguous timer id")
)
