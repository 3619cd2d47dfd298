// Package prog provides t's entry point: flag parsing and dispatch among
// the run, explain, parse-tree, and interactive subprograms (spec.md
// §6), in the Flags/newFlagSet/usage/Run([3]*os.File, ...) shape a
// flag-driven multi-subprogram CLI commonly takes, narrowed from a
// shell's many subprograms (daemon, web UI, REPL) to t's four, and
// generalized from a single fixed CPU-profiling/daemon-specific flag set
// to spec.md §6's own flags.
package prog

import (
	"flag"
	"fmt"
	"io"
	"os"

	"tlang.dev/pkg/logutil"
)

// Run parses command-line flags and runs the first applicable
// subprogram, returning the process exit code (spec.md §6: 0 success, 1
// eval error, 2 parse error, 64 usage error).
func Run(fds [3]*os.File, args []string) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 64
	}

	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(fds[2], "t: missing program")
		usage(fds[2], fs)
		return 64
	}
	program, files := rest[0], rest[1:]

	var p Program
	switch {
	case f.Interactive:
		p = interactiveProgram{}
	case f.Explain:
		p = explainProgram{}
	case f.ParseTree:
		p = parseTreeProgram{}
	default:
		p = runProgram{}
	}

	err = p.Run(fds, f, program, files)
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
		return 64
	case exitError:
		return err.exit
	}
	return 1
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: t [flags] <program> [file...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// BadUsage returns a special error that may be returned by Program.Run.
// It causes Run to print the message, the usage text, and exit 64.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run,
// causing Run to exit with the given code without printing an extra
// message. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram: run, explain, parse-tree, or
// interactive (spec.md §6).
type Program interface {
	Run(fds [3]*os.File, f *Flags, program string, files []string) error
}
