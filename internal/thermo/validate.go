package thermo

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNonPositiveTemperature = errors.New("temperature must be greater than 0 K")
	ErrZeroFrequency          = errors.New("frequency set contains a zero frequency")
)

// Validate rejects inputs for which Vibrational is undefined
func Validate(in Input) error {
	if !(in.Temperature > 0) {
		return fmt.Errorf("%w: got %g", ErrNonPositiveTemperature, in.Temperature)
	}
	sets := []struct {
		name  string
		freqs []float64
	}{
		{"final state", in.Final},
		{"isolated molecule", in.Isolated},
		{"surface", in.Surface},
	}
	for _, set := range sets {
		if slices.Contains(set.freqs, 0) {
			return fmt.Errorf("%s: %w", set.name, ErrZeroFrequency)
		}
	}
	return nil
}
