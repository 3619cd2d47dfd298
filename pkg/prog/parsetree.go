package prog

import (
	"fmt"
	"os"

	"tlang.dev/pkg/explain"
	"tlang.dev/pkg/parse"
)

// parseTreeProgram implements -p: print the parse tree and exit
// (spec.md §6).
type parseTreeProgram struct{}

func (parseTreeProgram) Run(fds [3]*os.File, f *Flags, program string, files []string) error {
	prog, err := parse.Parse(program)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return Exit(2)
	}
	fmt.Fprint(fds[1], explain.ParseTree(prog))
	return nil
}
