package model

// OutputPolicy maps the infinite world onto the finite array returned to callers
type OutputPolicy interface {
	Snapshot(world World, seedSize Size) [][]int
}

// PreserveInitialSize windows the world to the size of the last seeded pattern,
// anchored at the seed's origin. Live cells outside the window are not shown.
type PreserveInitialSize struct{}

func (PreserveInitialSize) Snapshot(world World, seedSize Size) [][]int {
	snapshot := make([][]int, seedSize.Height)
	for y := range snapshot {
		snapshot[y] = make([]int, seedSize.Width)
	}

	for c, state := range world {
		if c.X >= 0 && c.X < seedSize.Width && c.Y >= 0 && c.Y < seedSize.Height {
			snapshot[c.Y][c.X] = int(state)
		}
	}
	return snapshot
}
