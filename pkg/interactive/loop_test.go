//go:build unix

package interactive

import (
	"testing"
	"time"

	"github.com/creack/pty"

	"tlang.dev/pkg/eval"
	"tlang.dev/pkg/value"
)

// TestLoopCommitsTypedProgram drives Loop over a real pseudo-terminal
// via pty.Open, the same fixture shape an interactive-shell test harness
// uses, adapted from a line-editor harness to t's single-buffer preview
// loop.
func TestLoopCommitsTypedProgram(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer master.Close()
	defer slave.Close()

	input := value.NewArray(value.String("a"), value.String("b"))
	done := make(chan struct{})

	var program string
	var jsonMode, ok bool
	var loopErr error
	go func() {
		program, jsonMode, ok, loopErr = Loop(slave, slave, input, eval.Options{}, "\n")
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	master.Write([]byte("l"))
	time.Sleep(10 * time.Millisecond)
	master.Write([]byte("\r"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not return after commit")
	}

	if loopErr != nil {
		t.Fatalf("Loop returned error: %v", loopErr)
	}
	if !ok {
		t.Fatal("Loop reported cancelled, want committed")
	}
	if program != "l" {
		t.Errorf("committed program = %q, want %q", program, "l")
	}
	if jsonMode {
		t.Errorf("jsonMode = true, want false (never toggled)")
	}
}

// TestLoopCancelOnCtrlC exercises the cancel path.
func TestLoopCancelOnCtrlC(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer master.Close()
	defer slave.Close()

	input := value.NewArray(value.String("a"))
	done := make(chan struct{})
	var ok bool
	var loopErr error
	go func() {
		_, _, ok, loopErr = Loop(slave, slave, input, eval.Options{}, "\n")
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	master.Write([]byte{3}) // Ctrl-C

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not return after cancel")
	}
	if loopErr != nil {
		t.Fatalf("Loop returned error: %v", loopErr)
	}
	if ok {
		t.Fatal("Loop reported committed, want cancelled")
	}
}
