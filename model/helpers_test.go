package model

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

// rows turns strings of '0'/'1' into a pattern, one string per row
func rows(lines ...string) [][]int {
	pattern := make([][]int, len(lines))
	for y, line := range lines {
		pattern[y] = make([]int, len(line))
		for x, ch := range line {
			if ch == '1' {
				pattern[y][x] = 1
			}
		}
	}
	return pattern
}

func randomRows(width, height int, seed uint64) [][]int {
	rng := rand.New(rand.NewPCG(seed, 0))
	pattern := make([][]int, height)
	for y := range pattern {
		pattern[y] = make([]int, width)
		for x := range pattern[y] {
			pattern[y][x] = rng.IntN(2)
		}
	}
	return pattern
}

func mustSeed(t *testing.T, e Engine, pattern [][]int) {
	t.Helper()
	if err := e.Seed(pattern); err != nil {
		t.Fatalf("Seed() error = %+v", err)
	}
}

// expectSequence calls Next once per expected generation and compares the snapshots
func expectSequence(t *testing.T, e Engine, generations ...[][]int) {
	t.Helper()
	for i, want := range generations {
		got, err := e.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %+v", i+1, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Next() #%d = %v, want %v", i+1, got, want)
		}
	}
}

var engineFactories = map[string]func() Engine{
	"bounded":        func() Engine { return NewBoundedEngine(nil) },
	"bounded/pooled": func() Engine { return NewBoundedEngine(NewGridPool()) },
	"bounded/active-region": func() Engine {
		e := NewBoundedEngine(NewGridPool())
		e.UseActiveRegion(true)
		return e
	},
	"unbounded": func() Engine { return NewUnboundedEngine() },
}

func forEachEngine(t *testing.T, run func(t *testing.T, e Engine)) {
	for name, factory := range engineFactories {
		t.Run(name, func(t *testing.T) {
			run(t, factory())
		})
	}
}
