//go:build windows

package sys

import (
	"fmt"
	"os"
)

// State is unused on Windows; -i's raw-mode loop is unix-only for now
// (spec.md §9 Non-goals: Windows console support).
type State struct{}

func MakeRaw(fd int) (*State, error) {
	return nil, fmt.Errorf("sys: raw mode not supported on windows")
}

func Restore(fd int, state *State) error {
	return fmt.Errorf("sys: raw mode not supported on windows")
}

func winSize(file *os.File) (row, col int) { return 24, 80 }
