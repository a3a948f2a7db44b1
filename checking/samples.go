package checking

import (
	"fmt"
)

// Run check on every ordered pair drawn from samples, including pairs of a sample with itself.
//
// Returns the first error, annotated with the indices of the samples that produced it.
func ForAllPairs[T any](samples []T, check func(a, b T) error) error {
	for i, a := range samples {
		for j, b := range samples {
			if err := check(a, b); err != nil {
				return fmt.Errorf("samples %d, %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// Run check on every ordered triple drawn from samples, including repeated samples.
//
// Returns the first error, annotated with the indices of the samples that produced it.
func ForAllTriples[T any](samples []T, check func(a, b, c T) error) error {
	for i, a := range samples {
		for j, b := range samples {
			for k, c := range samples {
				if err := check(a, b, c); err != nil {
					return fmt.Errorf("samples %d, %d, %d: %w", i, j, k, err)
				}
			}
		}
	}
	return nil
}
