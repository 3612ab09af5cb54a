package utils

import "math/rand/v2"

// RandomPattern returns a width x height 0/1 pattern where each cell is alive
// with the given probability. The same seed always yields the same pattern.
func RandomPattern(width, height int, density float64, seed int64) [][]int {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	pattern := make([][]int, height)
	for y := range pattern {
		pattern[y] = make([]int, width)
		for x := range pattern[y] {
			if rng.Float64() < density {
				pattern[y][x] = 1
			}
		}
	}
	return pattern
}
