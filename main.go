package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist or is invalid
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	engine, snapshot, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to start: %+v", err)
	}
	displayGameInfo(config, snapshot)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
		restarts      = 0
		history       = &model.History{}
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %s\n", stats.Summary())
			return
		default:
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(engine, snapshot, generation, lastFrameTime, stats, history)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats)
		renderer.Display(snapshot)

		if restart, reason := checkRestartConditions(livingCells, stagnantCount, generation, config); restart {
			fmt.Printf("🔄 Restarting due to %s...\n", reason)
			restarts++
			if snapshot, err = restartGame(engine, history, config, restarts); err != nil {
				log.Fatalf("failed to restart: %+v", err)
			}
			stagnantCount = 0
			fmt.Printf("✨ New pattern loaded! Living cells: %d\n", model.CountAlive(snapshot))
		} else if stop, reason := checkStopConditions(livingCells, stagnantCount, generation, config); stop {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			fmt.Printf("Final stats: %s\n", stats.Summary())
			return
		}

		if snapshot, err = engine.Next(); err != nil {
			log.Fatalf("failed to advance generation %d: %+v", generation, err)
		}
		generation++

		time.Sleep(config.FrameRate)
	}
}
