package prog

import (
	"fmt"
	"os"

	"tlang.dev/pkg/explain"
	"tlang.dev/pkg/parse"
)

// explainProgram implements -e: print a human-readable trace of the
// program and exit (spec.md §6).
type explainProgram struct{}

func (explainProgram) Run(fds [3]*os.File, f *Flags, program string, files []string) error {
	prog, err := parse.Parse(program)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(2)
	}
	fmt.Fprint(fds[1], explain.Explain(prog))
	return nil
}
