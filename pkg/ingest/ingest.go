// Package ingest reads program input into the line-level value.Array the
// evaluator starts from (spec.md §5: eager, whole-input ingestion, no
// streaming). This is the one place LevelFile actually exists: the raw
// text blob, before it becomes the LevelLine array every op operates on.
package ingest

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/xerrors"

	"tlang.dev/pkg/value"
)

// Read concatenates the named files (or r, if files is empty) into one
// buffer and splits it into a value.Array of lines using delim as the
// record separator — "\n" by default, overridable with -d (spec.md §6).
// Invalid UTF-8 is reported as an error rather than silently passed
// through (spec.md §6: "Invalid UTF-8 -> exit 1 with a diagnostic").
func Read(files []string, r io.Reader, delim string) (value.Value, error) {
	buf, err := readAll(files, r)
	if err != nil {
		return nil, err
	}
	s := string(buf)
	if !utf8.ValidString(s) {
		return nil, xerrors.New("invalid UTF-8 in input")
	}
	var lines []string
	if delim == "\n" {
		lines = value.SplitLines(s)
	} else {
		lines = splitDelimNoTrailingEmpty(s, delim)
	}
	vs := make([]value.Value, len(lines))
	for i, l := range lines {
		vs[i] = value.String(l)
	}
	return value.NewArray(vs...), nil
}

func readAll(files []string, r io.Reader) ([]byte, error) {
	if len(files) == 0 {
		return io.ReadAll(r)
	}
	var buf []byte
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, xerrors.Errorf("opening %s: %w", name, err)
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, xerrors.Errorf("reading %s: %w", name, err)
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// splitDelimNoTrailingEmpty is value.SplitDelim, but drops one trailing
// empty record if the input ended with delim — the same "a trailing
// terminator is not a sentinel" rule value.SplitLines applies to "\n"
// (spec.md §6: "a trailing newline produces no extra empty line"),
// generalized to an arbitrary record delimiter.
func splitDelimNoTrailingEmpty(s, delim string) []string {
	pieces := value.SplitDelim(s, delim)
	if len(pieces) > 1 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	return pieces
}
