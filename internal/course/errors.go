package course

import "errors"

var (
	// ErrUnknownKey is returned when a selection value is outside its declared domain.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownTopic is returned by Evaluate for a topic ID it does not know.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrMissingDimension is returned when a required selection dimension is absent.
	ErrMissingDimension = errors.New("missing dimension")

	// ErrOutOfRange is returned for numeric input outside its declared bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrContract is returned when input violates an ordering or shape constraint
	// that the presenting layer is expected to enforce.
	ErrContract = errors.New("contract violation")
)
