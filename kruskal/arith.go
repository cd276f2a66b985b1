package kruskal

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MulChecked returns a·b, or ErrOverflow if the product wraps around T.
func MulChecked[T constraints.Unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}

	return c, nil
}

// Product multiplies sizes together. The product of no sizes is 1.
// Negative sizes are rejected with ErrInvalidInput.
func Product(sizes []int) (uint64, error) {
	out := uint64(1)
	for _, s := range sizes {
		if s < 0 {
			return 0, fmt.Errorf("Product: negative size %d: %w", s, ErrInvalidInput)
		}
		var err error
		if out, err = MulChecked(out, uint64(s)); err != nil {
			return 0, fmt.Errorf("Product(%v): %w", sizes, err)
		}
	}

	return out, nil
}
