//go:build unix

package sys

import (
	"golang.org/x/sys/unix"
)

// State holds a terminal's termios settings as captured by MakeRaw, so
// Restore can put them back exactly as they were.
type State struct {
	termios unix.Termios
}

// MakeRaw puts the terminal referenced by fd into raw mode (no echo, no
// line buffering, no signal generation on Ctrl-C/Ctrl-Z) and returns its
// previous state for Restore, the mode the interactive loop (-i) needs
// to read one keystroke at a time (spec.md §6). The flag-clearing is the
// same cfmakeraw algorithm golang.org/x/term.MakeRaw applies, grounded
// on the platform ioctl numbers (TCGETS/TCSETS, or TIOCGETA/TIOCSETA on
// BSD-derived kernels) for this platform.
func MakeRaw(fd int) (*State, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	oldState := &State{termios: *termios}

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}
	return oldState, nil
}

// Restore puts the terminal referenced by fd back into the state it was
// in before MakeRaw.
func Restore(fd int, state *State) error {
	return unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios)
}
