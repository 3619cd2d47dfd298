package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"tlang.dev/pkg/eval"
	"tlang.dev/pkg/logutil"
	"tlang.dev/pkg/sys"
	"tlang.dev/pkg/value"
)

var logger = logutil.GetLogger("[interactive] ")

// Loop runs the raw-mode keystroke loop against in/out, terminating on
// Enter (commit) or Ctrl-C (cancel); Esc does not cancel. It returns the committed
// program and whether JSON mode was toggled on, or ok=false if the user
// cancelled. in must be a terminal (spec.md §6: -i is only meaningful
// interactively); the caller is expected to have checked sys.IsATTY.
func Loop(in, out *os.File, input value.Value, opts eval.Options, outDelim string) (program string, jsonMode bool, ok bool, err error) {
	fd := int(in.Fd())
	state, err := sys.MakeRaw(fd)
	if err != nil {
		logger.Printf("failed to enter raw mode: %v", err)
		return "", false, false, err
	}
	defer sys.Restore(fd, state)
	logger.Printf("entered raw mode on fd %d", fd)

	s := NewState(input, opts, outDelim)
	r := bufio.NewReader(in)
	draw(out, s)

	for {
		action, err := readKey(r, s)
		if err != nil {
			return "", false, false, err
		}
		switch action {
		case actionCommit:
			fmt.Fprint(out, "\r\n")
			logger.Printf("committed program %q (json=%v)", s.Program(), s.JSON())
			return s.Program(), s.JSON(), true, nil
		case actionCancel:
			fmt.Fprint(out, "\r\n")
			logger.Printf("cancelled, buffer was %q", s.Program())
			return "", false, false, nil
		}
		draw(out, s)
	}
}

type keyAction int

const (
	actionContinue keyAction = iota
	actionCommit
	actionCancel
)

// readKey reads and applies one keystroke (possibly a multi-byte escape
// sequence for an arrow key) to s, returning what the loop should do
// next.
func readKey(r *bufio.Reader, s *State) (keyAction, error) {
	b, err := r.ReadByte()
	if err != nil {
		return actionContinue, err
	}
	switch b {
	case '\r':
		return actionCommit, nil
	case '\n':
		s.ToggleJSON()
		return actionContinue, nil
	case 3: // Ctrl-C
		return actionCancel, nil
	case 0x7f, 0x08: // Backspace/Delete-as-backspace
		s.Backspace()
		return actionContinue, nil
	case 0x1b: // Escape or arrow-key sequence (ESC [ A/B/C/D)
		return actionContinue, readEscape(r, s)
	default:
		return actionContinue, readRune(r, s, b)
	}
}

func readEscape(r *bufio.Reader, s *State) error {
	b1, err := r.ReadByte()
	if err != nil || b1 != '[' {
		// A bare Esc with nothing queued behind it; treat as cancel-ish
		// no-op rather than inserting a stray byte.
		return nil
	}
	b2, err := r.ReadByte()
	if err != nil {
		return err
	}
	switch b2 {
	case 'C':
		s.MoveRight()
	case 'D':
		s.MoveLeft()
	case 'H':
		s.MoveHome()
	case 'F':
		s.MoveEnd()
	case '3':
		if b3, err := r.ReadByte(); err == nil && b3 == '~' {
			s.Delete()
		}
	}
	return nil
}

func readRune(r *bufio.Reader, s *State, first byte) error {
	n := utf8SeqLen(first)
	buf := []byte{first}
	for i := 1; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		buf = append(buf, b)
	}
	for _, rn := range string(buf) {
		if rn >= 0x20 || rn == '\t' {
			s.Insert(rn)
		}
	}
	return nil
}

func utf8SeqLen(first byte) int {
	switch {
	case first&0x80 == 0:
		return 1
	case first&0xe0 == 0xc0:
		return 2
	case first&0xf0 == 0xe0:
		return 3
	case first&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}

// draw repaints the prompt and preview. It redraws from scratch every
// call rather than diffing, the same "clear, then print" approach
// original_source/src/interactive.rs's draw takes.
func draw(out io.Writer, s *State) {
	fmt.Fprint(out, "\r\x1b[K")
	fmt.Fprintf(out, "t> %s", s.Program())
	rendered, errLine := s.Preview()
	if errLine != "" {
		fmt.Fprintf(out, "\r\n\x1b[K%s\x1b[1A", errLine)
	} else {
		fmt.Fprintf(out, "\r\n\x1b[K%s\x1b[1A", rendered)
	}
	fmt.Fprintf(out, "\r\x1b[%dC", 3+s.Cursor())
}
