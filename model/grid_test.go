package model

import (
	"reflect"
	"testing"
)

func TestCountNeighborsOptimizedClipsAtEdges(t *testing.T) {
	g := GridFromPattern(rows("111", "111", "111"), nil)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{1, 0, 5},
		{1, 1, 8},
		{2, 2, 3},
	}
	for _, tt := range tests {
		if got := g.CountNeighborsOptimized(tt.x, tt.y); got != tt.want {
			t.Errorf("CountNeighborsOptimized(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGetBoundingBoxSize(t *testing.T) {
	g := GridFromPattern(rows("00000", "01000", "00010", "00000"), nil)
	if got := g.GetBoundingBoxSize(); got != 6 {
		t.Fatalf("GetBoundingBoxSize() = %d, want 6", got)
	}

	g.Clear()
	if got := g.GetBoundingBoxSize(); got != 0 {
		t.Fatalf("GetBoundingBoxSize() on empty grid = %d, want 0", got)
	}
}

func TestGridPoolReturnsClearedGrids(t *testing.T) {
	pool := NewGridPool()
	g := GridFromPattern(rows("11", "11"), pool)
	GridToPool(g, pool)
	GridToPool(nil, pool)

	reused := pool.Get(3, 4)
	if reused.GetWidth() != 3 || reused.GetHeight() != 4 {
		t.Fatalf("Get(3, 4) dimensions = %dx%d", reused.GetWidth(), reused.GetHeight())
	}
	if reused.CountLivingCells() != 0 {
		t.Fatalf("pooled grid has %d living cells, want 0", reused.CountLivingCells())
	}

	same := pool.Get(2, 2)
	if same.GetWidth() != 2 || same.CountLivingCells() != 0 {
		t.Fatalf("Get(2, 2) returned %dx%d grid with %d living cells",
			same.GetWidth(), same.GetHeight(), same.CountLivingCells())
	}
}

func TestNextGenerationLeavesCurrentUntouched(t *testing.T) {
	seed := rows("010", "010", "010")
	g := GridFromPattern(seed, nil)

	_ = g.NextGenerationParallel(nil)
	_ = g.NextGenerationActive(nil)

	if got := g.ToPattern(); !reflect.DeepEqual(got, seed) {
		t.Fatalf("current generation changed to %v", got)
	}
}
