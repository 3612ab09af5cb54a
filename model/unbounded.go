package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/rules"
)

// UnboundedEngine evolves an infinite plane. Only live cells are stored; the
// output policy decides which part of the plane is returned from Next.
type UnboundedEngine struct {
	world  World
	policy OutputPolicy
	size   Size
	seeded bool
}

// NewUnboundedEngine creates an unseeded engine using PreserveInitialSize
func NewUnboundedEngine() *UnboundedEngine {
	return &UnboundedEngine{
		world:  World{},
		policy: PreserveInitialSize{},
	}
}

// SetOutputPolicy changes how snapshots are windowed; a nil policy is ignored
func (e *UnboundedEngine) SetOutputPolicy(policy OutputPolicy) {
	if policy != nil {
		e.policy = policy
	}
}

// Seed clears the world and places every live cell of the pattern on it.
// The pattern is indexed [row][col] and mapped to x = col, y = row. Rows may
// differ in length.
func (e *UnboundedEngine) Seed(pattern [][]int) error {
	world := make(World)
	for y, row := range pattern {
		for x, v := range row {
			if stateOf(v) == Alive {
				world[Coordinate{X: x, Y: y}] = Alive
			}
		}
	}

	e.world = world
	e.size = Size{Width: MaxColumns(pattern), Height: len(pattern)}
	e.seeded = true
	return nil
}

// Next advances the world by one generation and returns the windowed snapshot
func (e *UnboundedEngine) Next() ([][]int, error) {
	if !e.seeded {
		return nil, errors.Wrap(ErrNotSeeded, "[UnboundedEngine.Next]")
	}

	e.world = nextWorld(e.world)
	return e.Snapshot(), nil
}

// Snapshot returns the current generation through the output policy
func (e *UnboundedEngine) Snapshot() [][]int {
	return e.policy.Snapshot(e.world, e.size)
}

// Population returns the number of live cells, including those outside the window
func (e *UnboundedEngine) Population() int {
	return len(e.world)
}

// BoundingBoxSize returns the area of the smallest rectangle holding every
// live cell, including cells outside the output window
func (e *UnboundedEngine) BoundingBoxSize() int {
	lo, hi, ok := e.world.Bounds()
	if !ok {
		return 0
	}
	return (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1)
}

// nextWorld builds the following generation without touching current
func nextWorld(current World) World {
	// dead cells next to at least one live cell
	candidates := make(map[Coordinate]struct{}, len(current))
	for c := range current {
		for _, offset := range NeighbourMask {
			n := c.Add(offset)
			if _, alive := current[n]; !alive {
				candidates[n] = struct{}{}
			}
		}
	}

	next := make(World, len(current))
	for c := range current {
		if rules.ApplyConwayRules(current.LiveNeighbours(c), true) {
			next[c] = Alive
		}
	}
	for c := range candidates {
		if rules.ApplyConwayRules(current.LiveNeighbours(c), false) {
			next[c] = Alive
		}
	}
	return next
}
