package mesh

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a subdivision count cannot produce a
// closed shape. Radius and height are never validated: zero or negative
// values yield degenerate but well-defined geometry.
var ErrInvalidArgument = errors.New("invalid argument")

// MinSides is the smallest side count for revolved shapes.
const MinSides = 3

func checkCount(shape, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s must be >= %d, got %d: %w", shape, name, min, got, ErrInvalidArgument)
	}
	return nil
}
