// Package sys provides the small set of terminal primitives the
// interactive loop (-i) needs, with the same API across OSes: whether a
// file is a terminal, its size, and putting it into and out of raw mode
// (see raw_unix.go/raw_windows.go). Narrowed down to just that surface:
// no daemon signal plumbing, BSD fd-set select, or Windows console event
// decoding, since t's single-keystroke-at-a-time loop has no use for any
// of that (spec.md §6, §9).
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// WinSize queries the size of the terminal referenced by the given file.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// IsATTY determines whether the given file is a terminal, the gate -i
// checks before entering raw mode (spec.md §6).
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
