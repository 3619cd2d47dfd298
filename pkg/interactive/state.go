// Package interactive implements -i's live preview: a line buffer that
// re-parses and re-evaluates on every keystroke against a cached input
// Value (spec.md §5: "the interactive shell is an external collaborator
// that re-invokes the pure evaluator on each keystroke"). Grounded on
// original_source/src/interactive.rs's InteractiveMode for the state
// shape (programme buffer, cursor, json_output toggle, try_execute's
// "show the best result we can, error or not" behavior), split here into
// pure state plus the separate terminal-IO loop (loop.go) that drives it.
package interactive

import (
	"tlang.dev/pkg/eval"
	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/render"
	"tlang.dev/pkg/value"
)

// State is the pure, terminal-independent half of -i: a line buffer plus
// the cached input it previews against. Loop drives it from raw
// keystrokes; tests drive it directly.
type State struct {
	input    value.Value
	opts     eval.Options
	outDelim string

	buf    []rune
	cursor int
	json   bool

	lastGood string
}

// NewState seeds a State against the already-ingested input.
func NewState(input value.Value, opts eval.Options, outDelim string) *State {
	return &State{input: input, opts: opts, outDelim: outDelim}
}

// Program returns the current buffer contents.
func (s *State) Program() string { return string(s.buf) }

// Cursor returns the current cursor offset, in runes.
func (s *State) Cursor() int { return s.cursor }

// JSON reports whether JSON rendering is currently toggled on.
func (s *State) JSON() bool { return s.json }

// ToggleJSON flips the text/JSON rendering mode (^J).
func (s *State) ToggleJSON() { s.json = !s.json }

// Insert inserts r at the cursor and advances it.
func (s *State) Insert(r rune) {
	s.buf = append(s.buf[:s.cursor], append([]rune{r}, s.buf[s.cursor:]...)...)
	s.cursor++
}

// Backspace deletes the rune before the cursor, if any.
func (s *State) Backspace() {
	if s.cursor == 0 {
		return
	}
	s.buf = append(s.buf[:s.cursor-1], s.buf[s.cursor:]...)
	s.cursor--
}

// Delete deletes the rune at the cursor, if any.
func (s *State) Delete() {
	if s.cursor >= len(s.buf) {
		return
	}
	s.buf = append(s.buf[:s.cursor], s.buf[s.cursor+1:]...)
}

// MoveLeft, MoveRight, MoveHome, and MoveEnd reposition the cursor.
func (s *State) MoveLeft() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *State) MoveRight() {
	if s.cursor < len(s.buf) {
		s.cursor++
	}
}

func (s *State) MoveHome() { s.cursor = 0 }
func (s *State) MoveEnd()  { s.cursor = len(s.buf) }

// Preview runs the current buffer against the cached input and returns
// the rendered output plus a one-line error, if any. On error the
// rendered output is the last successful render rather than empty
// (spec.md §7: interactive mode "shows the last valid preview or a
// one-line error").
func (s *State) Preview() (rendered string, errLine string) {
	prog, err := parse.Parse(s.Program())
	if err != nil {
		return s.lastGood, err.Error()
	}
	out, err := eval.Eval(prog, s.input, s.opts)
	if err != nil {
		return s.lastGood, err.Error()
	}
	if s.json {
		b, err := render.JSON(out)
		if err != nil {
			return s.lastGood, err.Error()
		}
		s.lastGood = string(b)
	} else {
		s.lastGood = render.Text(out, s.outDelim, s.opts.CSV)
	}
	return s.lastGood, ""
}
