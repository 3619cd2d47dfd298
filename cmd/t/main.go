// t is a concise stream-processing language for line-oriented text, a
// single-letter-operator alternative to grep|sed|cut|awk|sort|uniq
// chains (spec.md §1).
package main

import (
	"os"

	"tlang.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args))
}
