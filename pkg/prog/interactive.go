package prog

import (
	"fmt"
	"os"

	"tlang.dev/pkg/eval"
	"tlang.dev/pkg/ingest"
	"tlang.dev/pkg/interactive"
	"tlang.dev/pkg/sys"
)

// interactiveProgram implements -i: a live-preview loop that re-runs the
// evaluator on every keystroke against input ingested once up front
// (spec.md §5, §6). Run still requires the positional program argument,
// but this subprogram does not use it: the live buffer starts empty.
type interactiveProgram struct{}

func (interactiveProgram) Run(fds [3]*os.File, f *Flags, program string, files []string) error {
	if !sys.IsATTY(fds[0].Fd()) {
		return BadUsage("t: -i requires an interactive terminal")
	}

	input, err := ingest.Read(files, fds[0], f.Delim)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(1)
	}

	committed, jsonMode, ok, err := interactive.Loop(fds[0], fds[1], input, eval.Options{CSV: f.CSV}, f.OutDelim)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(1)
	}
	if !ok {
		return Exit(0)
	}
	f.JSON = jsonMode
	return evalAndRender(fds, f, committed, input)
}
