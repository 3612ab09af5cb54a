package utils

import (
	"fmt"
	"time"
)

// Stats tracks the pace and population of a running simulation
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	BoundingBoxSize      int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation, the area its live cells span and how long its frame took
func (s *Stats) Update(generation, population, boundingBox int, frame time.Duration) {
	s.TotalGenerations = generation
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.BoundingBoxSize = boundingBox
	if frame > 0 {
		s.GenerationsPerSecond = 1.0 / frame.Seconds()
	}

	// Exponential moving average, seeded by the first sample
	if generation == 0 || s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary is a one-line report for the end of a run
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations in %.1fs | %.1f gen/sec | avg population %.1f | peak %d",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.AveragePopulation, s.PeakPopulation)
}
