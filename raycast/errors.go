package raycast

import "errors"

// Validation failures fall into two buckets: malformed generation
// parameters and malformed cast inputs. Both surface at construction or
// call boundaries and indicate a caller bug rather than a runtime
// condition to recover from.
var (
	// ErrInvalidConfiguration reports malformed wall generation parameters,
	// such as degenerate bounds or a non-positive wall count.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument reports malformed cast or wall inputs, such as a
	// non-positive max range, a zero-length direction, or a zero-length wall.
	ErrInvalidArgument = errors.New("invalid argument")
)
