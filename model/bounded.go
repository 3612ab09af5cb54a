package model

import "github.com/pkg/errors"

// BoundedEngine evolves a fixed-size grid. Neighbourhoods are clipped at the
// edges, so a cell on the border simply has fewer neighbours; there is no
// wraparound.
type BoundedEngine struct {
	grid         *Grid
	pool         *GridPool
	activeRegion bool
}

// NewBoundedEngine creates an unseeded bounded engine. A nil pool disables grid reuse.
func NewBoundedEngine(pool *GridPool) *BoundedEngine {
	return &BoundedEngine{pool: pool}
}

// UseActiveRegion switches between stepping the whole grid in parallel and
// stepping only the bounding box of living cells. Both produce the same generations.
func (e *BoundedEngine) UseActiveRegion(enabled bool) {
	e.activeRegion = enabled
}

// Seed replaces the grid with the pattern. Invalid patterns leave the engine untouched.
func (e *BoundedEngine) Seed(pattern [][]int) error {
	if err := ValidateSeed(pattern); err != nil {
		return errors.Wrap(err, "[BoundedEngine.Seed]")
	}

	e.swap(GridFromPattern(pattern, e.pool))
	return nil
}

// Next advances the grid by one generation and returns a copy of it
func (e *BoundedEngine) Next() ([][]int, error) {
	if e.grid == nil {
		return nil, errors.Wrap(ErrNotSeeded, "[BoundedEngine.Next]")
	}

	var next *Grid
	if e.activeRegion {
		next = e.grid.NextGenerationActive(e.pool)
	} else {
		next = e.grid.NextGenerationParallel(e.pool)
	}
	e.swap(next)

	return e.grid.ToPattern(), nil
}

// Size returns the grid dimensions, zero before the first Seed
func (e *BoundedEngine) Size() Size {
	if e.grid == nil {
		return Size{}
	}
	return Size{Width: e.grid.GetWidth(), Height: e.grid.GetHeight()}
}

// Population returns the number of living cells
func (e *BoundedEngine) Population() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.CountLivingCells()
}

// BoundingBoxSize returns the area of the smallest rectangle holding every living cell
func (e *BoundedEngine) BoundingBoxSize() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.GetBoundingBoxSize()
}

func (e *BoundedEngine) swap(next *Grid) {
	old := e.grid
	e.grid = next
	GridToPool(old, e.pool)
}
