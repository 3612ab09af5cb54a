package model

// World is the sparse live-cell mapping of an unbounded world. Absence of a
// coordinate means the cell is dead; only Alive is ever stored.
type World map[Coordinate]CellState

// State returns the state at c, Dead when c is not in the world
func (w World) State(c Coordinate) CellState {
	if s, ok := w[c]; ok {
		return s
	}
	return Dead
}

// LiveNeighbours counts the live cells in the Moore neighbourhood of c
func (w World) LiveNeighbours(c Coordinate) (count int) {
	for _, offset := range NeighbourMask {
		if w.State(c.Add(offset)) == Alive {
			count++
		}
	}
	return
}

// Bounds returns the corners of the bounding box of the live cells; ok is
// false for an empty world
func (w World) Bounds() (lo, hi Coordinate, ok bool) {
	for c := range w {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return
}
