package prog

import (
	"flag"
	"io"
)

// Flags keeps t's command-line flags (spec.md §6).
type Flags struct {
	Delim       string
	OutDelim    string
	CSV         bool
	Explain     bool
	ParseTree   bool
	Interactive bool
	JSON        bool

	Log string

	Help bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Delim, "d", "\n", "override the file-level record delimiter used to split input into lines")
	fs.StringVar(&f.OutDelim, "D", "\n", "output delimiter for top-level text rendering")
	fs.BoolVar(&f.CSV, "c", false, "CSV mode: S<delim>, J<delim> and text output respect double-quoted fields (s and j do not)")
	fs.BoolVar(&f.Explain, "e", false, "print an explanation of the program and exit")
	fs.BoolVar(&f.ParseTree, "p", false, "print the parse tree of the program and exit")
	fs.BoolVar(&f.Interactive, "i", false, "interactive mode: live preview, ^J toggles text/JSON")
	fs.BoolVar(&f.JSON, "j", false, "render output as JSON")

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")

	return fs
}
