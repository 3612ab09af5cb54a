package model

// CellState is the state of a single cell, Dead or Alive
type CellState int

const (
	Dead CellState = iota
	Alive
)

// Coordinate is a position on the infinite plane, x horizontal and y vertical
type Coordinate struct {
	X int
	Y int
}

// Add returns the component-wise sum of two coordinates
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// NeighbourMask holds the offsets of the eight cells of a Moore neighbourhood
var NeighbourMask = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Size is the width and height of a rectangular window
type Size struct {
	Width  int
	Height int
}

func stateOf(v int) CellState {
	if v == int(Alive) {
		return Alive
	}
	return Dead
}

// CountAlive returns the number of live cells in a snapshot
func CountAlive(pattern [][]int) (count int) {
	for _, row := range pattern {
		for _, v := range row {
			if stateOf(v) == Alive {
				count++
			}
		}
	}
	return
}
