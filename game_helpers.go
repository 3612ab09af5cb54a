package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// populator is an engine that can report its total living population
type populator interface{ Population() int }

// boundingBoxer is an engine that can report the area around its living cells
type boundingBoxer interface{ BoundingBoxSize() int }

// initializeGame builds and seeds the engine selected by the configuration
func initializeGame(config utils.Config) (
	model.Engine,
	[][]int,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	mode, err := model.ParseMode(config.Mode)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	engine, err := model.NewEngine(mode, pool)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	if bounded, ok := engine.(*model.BoundedEngine); ok {
		bounded.UseActiveRegion(config.UseActiveRegion)
	}

	seed := utils.RandomPattern(config.Width, config.Height, config.RandomDensity, config.RandomSeed)
	if err = engine.Seed(seed); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	renderer := model.NewTerminalRenderer(config.AliveCharacter, config.DeadCharacter)
	return engine, seed, renderer, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, seed [][]int) {
	fmt.Printf("Mode: %s | Memory Pool: %v | Active Region: %v\n",
		config.Mode, config.UseMemoryPool, config.UseActiveRegion)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		config.Width, config.Height, model.CountAlive(seed))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates stats and stagnation tracking for the latest snapshot
func updateGameState(
	engine model.Engine,
	snapshot [][]int,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *model.History,
) (int, float64, string, bool) {
	visibleCells := model.CountAlive(snapshot)
	livingCells := visibleCells
	if p, ok := engine.(populator); ok {
		livingCells = p.Population()
	}

	area := len(snapshot) * model.MaxColumns(snapshot)
	density := 0.0
	if area > 0 {
		density = float64(visibleCells) / float64(area) * 100
	}

	boundingBox := 0
	if b, ok := engine.(boundingBoxer); ok {
		boundingBox = b.BoundingBoxSize()
	}

	stats.Update(generation, livingCells, boundingBox, time.Since(lastFrameTime))
	isStagnant := history.Observe(snapshot)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	} else if visibleCells == 0 {
		status = "Outside window"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, density, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

func reachedMaxGenerations(generation int, config utils.Config) bool {
	return !config.Endless && config.MaxGenerations > 0 && generation >= config.MaxGenerations
}

// checkRestartConditions determines if the run should start over with a new pattern
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if !config.AutoRestart || reachedMaxGenerations(generation, config) {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// checkStopConditions determines if the run should end
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if reachedMaxGenerations(generation, config) {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	if config.StopOnExtinction && livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame re-seeds the engine with the pattern for the given restart and
// forgets the snapshots of the previous run
func restartGame(
	engine model.Engine,
	history *model.History,
	config utils.Config,
	restart int,
) ([][]int, error) {
	seed := utils.RandomPattern(config.Width, config.Height, config.RandomDensity, config.RandomSeed+int64(restart))
	if err := engine.Seed(seed); err != nil {
		return nil, errors.Wrapf(err, "[restartGame] restart %d", restart)
	}
	history.Reset()
	return seed, nil
}
