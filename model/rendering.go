package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer prints snapshots as rows of glyphs
type TerminalRenderer struct {
	Out   io.Writer
	Alive string
	Dead  string
}

// NewTerminalRenderer returns a renderer writing to stdout; empty glyphs fall back to the defaults
func NewTerminalRenderer(alive, dead string) *TerminalRenderer {
	if alive == "" {
		alive = gridPosBlock
	}
	if dead == "" {
		dead = gridPosEmpty
	}
	return &TerminalRenderer{Out: os.Stdout, Alive: alive, Dead: dead}
}

// Display renders the snapshot
func (r *TerminalRenderer) Display(pattern [][]int) {
	for _, row := range pattern {
		for _, v := range row {
			if stateOf(v) == Alive {
				fmt.Fprint(r.Out, r.Alive)
			} else {
				fmt.Fprint(r.Out, r.Dead)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
