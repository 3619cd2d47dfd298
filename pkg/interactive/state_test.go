package interactive

import (
	"strings"
	"testing"

	"tlang.dev/pkg/eval"
	"tlang.dev/pkg/value"
)

func lines(ss ...string) value.Value {
	vs := make([]value.Value, len(ss))
	for i, s := range ss {
		vs[i] = value.String(s)
	}
	return value.NewArray(vs...)
}

func TestStateInsertAndPreview(t *testing.T) {
	s := NewState(lines("The cat sat", "the cat slept"), eval.Options{}, "\n")
	for _, r := range "l" {
		s.Insert(r)
	}
	out, errLine := s.Preview()
	if errLine != "" {
		t.Fatalf("unexpected error: %s", errLine)
	}
	if !strings.Contains(out, "the cat sat") {
		t.Errorf("Preview() = %q, want lowercased lines", out)
	}
}

func TestStateBackspaceAndCursor(t *testing.T) {
	s := NewState(lines("a", "b"), eval.Options{}, "\n")
	s.Insert('l')
	s.Insert('x')
	if s.Program() != "lx" || s.Cursor() != 2 {
		t.Fatalf("Program() = %q, Cursor() = %d", s.Program(), s.Cursor())
	}
	s.Backspace()
	if s.Program() != "l" || s.Cursor() != 1 {
		t.Fatalf("after Backspace: Program() = %q, Cursor() = %d", s.Program(), s.Cursor())
	}
}

func TestStateMovementAndInsertAtCursor(t *testing.T) {
	s := NewState(lines("a"), eval.Options{}, "\n")
	s.Insert('l')
	s.Insert('u')
	s.MoveLeft()
	s.Insert('x')
	if s.Program() != "lxu" {
		t.Fatalf("Program() = %q, want lxu", s.Program())
	}
	s.MoveHome()
	s.Delete()
	if s.Program() != "xu" {
		t.Fatalf("Program() = %q, want xu", s.Program())
	}
	s.MoveEnd()
	if s.Cursor() != len([]rune(s.Program())) {
		t.Errorf("MoveEnd did not move to end")
	}
}

func TestStatePreviewKeepsLastGoodOnParseError(t *testing.T) {
	s := NewState(lines("a", "b"), eval.Options{}, "\n")
	s.Insert('l')
	good, errLine := s.Preview()
	if errLine != "" {
		t.Fatalf("unexpected error on valid program: %s", errLine)
	}

	s.Insert('/') // start an unterminated regex filter: invalid program
	_, errLine = s.Preview()
	if errLine == "" {
		t.Fatalf("expected a parse error for unterminated regex")
	}
	stillGood, _ := s.Preview()
	if stillGood != good {
		t.Errorf("Preview() on error = %q, want last good render %q", stillGood, good)
	}
}

func TestStateToggleJSON(t *testing.T) {
	s := NewState(lines("a"), eval.Options{}, "\n")
	if s.JSON() {
		t.Fatal("JSON() should start false")
	}
	s.ToggleJSON()
	if !s.JSON() {
		t.Fatal("ToggleJSON did not flip state")
	}
	out, errLine := s.Preview()
	if errLine != "" {
		t.Fatalf("unexpected error: %s", errLine)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "[") && !strings.HasPrefix(strings.TrimSpace(out), `"`) {
		t.Errorf("Preview() in JSON mode = %q, want JSON-shaped output", out)
	}
}
