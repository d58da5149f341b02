package keyframe

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNaN   = errors.New("keyframe contains NaN")
	ErrArity = errors.New("keyframe arity mismatch")
)

// Validate checks a parsed track for malformed numbers and mixed vector
// lengths. Parse does not call it.
func Validate(track Track) error {
	arity := track.Arity()
	for i, k := range track {
		if math.IsNaN(k.T) {
			return fmt.Errorf("keyframe %d time: %w", i, ErrNaN)
		}
		for _, v := range k.V {
			if math.IsNaN(v) {
				return fmt.Errorf("keyframe %d at %v: %w", i, k.T, ErrNaN)
			}
		}
		if len(k.V) != arity {
			return fmt.Errorf("keyframe %d at %v has %d components, want %d: %w",
				i, k.T, len(k.V), arity, ErrArity)
		}
	}
	return nil
}
