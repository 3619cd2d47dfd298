package prog

import (
	"fmt"
	"os"

	"tlang.dev/pkg/eval"
	"tlang.dev/pkg/ingest"
	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/render"
	"tlang.dev/pkg/value"
)

// runProgram parses, ingests, evaluates, and renders — the default
// subprogram (spec.md §4, §6).
type runProgram struct{}

func (runProgram) Run(fds [3]*os.File, f *Flags, program string, files []string) error {
	input, err := ingest.Read(files, fds[0], f.Delim)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(1)
	}
	return evalAndRender(fds, f, program, input)
}

// evalAndRender parses and runs program against an already-ingested
// input, then renders the result — shared by runProgram and the
// interactive subprogram's post-commit run, which must not re-ingest
// stdin a second time.
func evalAndRender(fds [3]*os.File, f *Flags, program string, input value.Value) error {
	prog, err := parse.Parse(program)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(2)
	}

	out, err := eval.Eval(prog, input, eval.Options{CSV: f.CSV})
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(1)
	}

	if f.JSON {
		b, err := render.JSON(out)
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return Exit(1)
		}
		fds[1].Write(b)
		fmt.Fprintln(fds[1])
		return nil
	}
	fmt.Fprintln(fds[1], render.Text(out, f.OutDelim, f.CSV))
	return nil
}
