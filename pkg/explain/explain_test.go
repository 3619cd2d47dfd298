package explain

import (
	"strings"
	"testing"

	"tlang.dev/pkg/parse"
)

func TestParseTreeOneLinePerOp(t *testing.T) {
	prog, err := parse.Parse("sfld:20")
	if err != nil {
		t.Fatal(err)
	}
	got := ParseTree(prog)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != len(prog.Ops) {
		t.Fatalf("got %d lines, want %d", len(lines), len(prog.Ops))
	}
}

func TestExplainMentionsOpKind(t *testing.T) {
	prog, err := parse.Parse("l")
	if err != nil {
		t.Fatal(err)
	}
	got := Explain(prog)
	if !strings.Contains(got, "lowercase") {
		t.Errorf("Explain(%q) = %q, want mention of lowercasing", "l", got)
	}
}

func TestExplainSelection(t *testing.T) {
	prog, err := parse.Parse("0,-1")
	if err != nil {
		t.Fatal(err)
	}
	got := Explain(prog)
	if !strings.Contains(got, "0, -1") {
		t.Errorf("Explain(%q) = %q, want selection 0, -1", "0,-1", got)
	}
}
