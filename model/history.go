package model

import (
	"crypto/md5"
	"fmt"
)

const historyDepth = 5

// History remembers hashes of recent snapshots to spot worlds that have stopped changing
type History struct {
	hashes []string
}

// HashPattern returns an MD5 hash of a snapshot
func HashPattern(pattern [][]int) string {
	h := md5.New()
	for _, row := range pattern {
		for _, v := range row {
			h.Write([]byte{byte(stateOf(v))})
		}
		// keeps {{1},{1}} and {{1,1}} apart
		h.Write([]byte{0xff})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Observe records a snapshot and reports whether it repeats one of the last
// three, i.e. the world is static or cycling with period 2 or 3.
func (h *History) Observe(pattern [][]int) bool {
	current := HashPattern(pattern)

	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	// Keep only the most recent states
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets every observed snapshot
func (h *History) Reset() {
	h.hashes = nil
}
