package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Grid is the dense storage behind the bounded engine. Cells outside
// [0, width) x [0, height) do not exist.
type Grid struct {
	width  int
	height int
	cells  [][]bool

	// Optional active region optimization
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GridFromPattern builds a grid from a rectangular 0/1 pattern indexed [row][col]
func GridFromPattern(pattern [][]int, pool *GridPool) *Grid {
	var (
		height = len(pattern)
		width  = MaxColumns(pattern)
		g      *Grid
	)
	if pool != nil {
		g = pool.Get(width, height)
	} else {
		g = NewGrid(width, height)
	}
	for y, row := range pattern {
		for x, v := range row {
			g.cells[y][x] = stateOf(v) == Alive
		}
	}
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.activeBounds.valid = false

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.activeBounds.valid = false
}

// CountNeighborsOptimized counts living neighbors, clipping the neighbourhood at the grid edges
func (g *Grid) CountNeighborsOptimized(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minX, g.activeBounds.maxX = x, x
				g.activeBounds.minY, g.activeBounds.maxY = y, y
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minX = min(g.activeBounds.minX, x)
			g.activeBounds.maxX = max(g.activeBounds.maxX, x)
			g.activeBounds.minY = min(g.activeBounds.minY, y)
			g.activeBounds.maxY = max(g.activeBounds.maxY, y)
		}
	}
}

// GetBoundingBoxSize returns the area of the bounding box around living cells
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

func (g *Grid) blank(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// NextGenerationParallel calculates the next generation into a fresh grid, splitting rows across workers
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := g.blank(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), g.cells[y][x]) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	return next
}

// NextGenerationActive calculates the next generation only around the living cells
func (g *Grid) NextGenerationActive(pool *GridPool) *Grid {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next := g.blank(pool)

	// If no active cells, return empty grid
	if !g.activeBounds.valid {
		return next
	}

	// Process only the active region + 1 margin
	minX := max(0, g.activeBounds.minX-1)
	maxX := min(g.width-1, g.activeBounds.maxX+1)
	minY := max(0, g.activeBounds.minY-1)
	maxY := min(g.height-1, g.activeBounds.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}

	next.calculateActiveBounds()
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// ToPattern copies the grid into a fresh 0/1 array indexed [row][col]
func (g *Grid) ToPattern() [][]int {
	pattern := make([][]int, g.height)
	for y := range g.height {
		pattern[y] = make([]int, g.width)
		for x := range g.width {
			if g.cells[y][x] {
				pattern[y][x] = int(Alive)
			}
		}
	}
	return pattern
}
