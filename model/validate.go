package model

import "github.com/pkg/errors"

// IsRectangular reports whether every row of the pattern has the same length
func IsRectangular(pattern [][]int) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if len(pattern[i]) != len(pattern[i+1]) {
			return false
		}
	}
	return true
}

// MaxColumns returns the length of the longest row, 0 for an empty pattern
func MaxColumns(pattern [][]int) (cols int) {
	for _, row := range pattern {
		cols = max(cols, len(row))
	}
	return
}

// ValidateSeed checks that a pattern can seed a fixed-size grid
func ValidateSeed(pattern [][]int) error {
	if !IsRectangular(pattern) {
		return errors.Wrap(ErrInvalidSeed, "[ValidateSeed] pattern must be a rectangular array")
	}
	if len(pattern) == 0 {
		return errors.Wrap(ErrInvalidSeed, "[ValidateSeed] pattern must have at least one row")
	}
	if len(pattern[0]) == 0 {
		return errors.Wrap(ErrInvalidSeed, "[ValidateSeed] pattern must have at least one column")
	}
	return nil
}
