package model

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSeed is returned when a pattern cannot seed an engine
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrNotSeeded is returned when Next is called before a successful Seed
	ErrNotSeeded = errors.New("engine has not been seeded")
	// ErrUnknownMode is returned by the engine factory for an unsupported mode
	ErrUnknownMode = errors.New("unknown engine mode")
)

// Engine evolves a Game of Life world one generation at a time.
//
// Seed establishes generation 0 and discards any previous state. Next advances
// by one generation and returns a detached snapshot of it.
type Engine interface {
	Seed(pattern [][]int) error
	Next() ([][]int, error)
}

// Mode selects the topology of the world an engine simulates
type Mode int

const (
	// Bounded worlds are fixed-size grids; nothing exists past the edges
	Bounded Mode = iota
	// Unbounded worlds are infinite planes observed through an output window
	Unbounded
)

func (m Mode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case Unbounded:
		return "unbounded"
	}
	return "unknown"
}

// ParseMode converts a mode name into a Mode
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bounded", "constrained":
		return Bounded, nil
	case "unbounded", "endless":
		return Unbounded, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "[ParseMode] %+v", name)
}

// NewEngine creates an engine for the given mode. The pool is only used by
// bounded engines and may be nil.
func NewEngine(mode Mode, pool *GridPool) (Engine, error) {
	switch mode {
	case Bounded:
		return NewBoundedEngine(pool), nil
	case Unbounded:
		return NewUnboundedEngine(), nil
	}
	return nil, errors.Wrapf(ErrUnknownMode, "[NewEngine] %+v", int(mode))
}
