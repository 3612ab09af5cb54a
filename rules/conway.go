package rules

const (
	// UnderPopulation is the fewest live neighbours a live cell needs to survive
	UnderPopulation = 2
	// OverPopulation is the most live neighbours a live cell can have and survive
	OverPopulation = 3
	// Reproduction is the exact live neighbour count that brings a dead cell to life
	Reproduction = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbours, a dead cell is born with exactly 3,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= UnderPopulation && neighbors <= OverPopulation
	}
	return neighbors == Reproduction
}
