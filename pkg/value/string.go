package value

import (
	"strings"
	"unicode"
)

// String is an immutable sequence of Unicode scalar values. All
// character-level operations below count and index runes, never bytes.
type String string

func (String) Kind() string { return "string" }

// Runes returns the Unicode scalar values of s as a slice, the unit that
// char-level indexing, slicing, and splitting operate over.
func (s String) Runes() []rune { return []rune(s) }

// Len returns the number of Unicode scalar values in s.
func (s String) Len() int { return len([]rune(s)) }

// SplitLines splits on "\n" or any character in "\r\n", preserving empty
// pieces. A single trailing "\n" or "\r" is stripped before splitting, so a
// trailing newline never produces a trailing empty line (spec.md §6: "a
// trailing newline produces no extra empty line"); an input with no
// trailing terminator is unaffected.
func SplitLines(s string) []string {
	runes := []rune(s)
	if n := len(runes); n > 0 && (runes[n-1] == '\n' || runes[n-1] == '\r') {
		runes = runes[:n-1]
	}
	var out []string
	start := 0
	for i, r := range runes {
		if r == '\n' || r == '\r' {
			out = append(out, string(runes[start:i]))
			start = i + 1
		}
	}
	out = append(out, string(runes[start:]))
	return out
}

// SplitWords splits on runs of Unicode whitespace, dropping empty pieces
// (the line→word rule in spec.md §3).
func SplitWords(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}

// SplitChars splits s into one string per Unicode scalar value, producing
// no empty pieces (an empty input yields an empty slice).
func SplitChars(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// JoinLines, JoinWords, and JoinChars are the level-appropriate inverses of
// SplitLines, SplitWords, and SplitChars (spec.md §3's j/level table).
func JoinLines(ss []string) string { return strings.Join(ss, "\n") }
func JoinWords(ss []string) string { return strings.Join(ss, " ") }
func JoinChars(ss []string) string { return strings.Join(ss, "") }

// SplitDelim splits on a literal, possibly multi-character delimiter —
// the S<delim> operator. An empty delimiter is rejected by the parser, not
// here.
func SplitDelim(s, delim string) []string {
	return strings.Split(s, delim)
}

// SplitAtLevel splits a string that is a direct child of an array at the
// given level, per the table in spec.md §3. ok is false at LevelChar,
// which has no further split.
func SplitAtLevel(level Level, s string) (pieces []string, ok bool) {
	switch level {
	case LevelFile:
		return SplitLines(s), true
	case LevelLine:
		return SplitWords(s), true
	case LevelWord:
		return SplitChars(s), true
	default:
		return nil, false
	}
}

// JoinDelimiter returns the literal delimiter used to join an array whose
// own level is the given level — one level deeper than the level that was
// split to produce it, per the file/line/word row of spec.md §3's table.
// LevelFile has no delimiter: the top-level array is never itself a join
// target.
func JoinDelimiter(level Level) string {
	switch level {
	case LevelLine:
		return "\n"
	case LevelWord:
		return " "
	default:
		// LevelChar, and anything deeper by virtue of arbitrary nesting:
		// no separator, matching the char row of the split table.
		return ""
	}
}
