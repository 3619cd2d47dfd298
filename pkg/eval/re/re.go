// Package re is the regex engine interface (spec.md §4.9): a single
// place patterns are compiled and applied, so the rest of the language
// never imports regexp directly. Wraps Go's regexp the way a regex
// module commonly does, but fixes the dialect instead of exposing a
// -posix switch: RE2, Perl character classes (\d \w \s), case-sensitive,
// multiline off. This resolves spec.md §9's open question on regex
// dialect.
package re

import (
	"regexp"

	"golang.org/x/xerrors"
)

// Compile compiles pattern once, at parse time, so a malformed pattern
// surfaces as a ParseError rather than failing mid-evaluation. The
// returned error wraps the regexp compile error with %w, so errors.As
// reaches it; the parser copies only its text into the ParseError message.
func Compile(pattern string) (*regexp.Regexp, error) {
	pat, err := regexp.Compile(pattern)
	if err != nil {
		return nil, xerrors.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return pat, nil
}

// ReplaceAll substitutes every match of pat in s with repl, which may
// contain $1/${name} backreferences — Go's regexp already implements
// spec.md §4.5's backreference syntax natively.
func ReplaceAll(pat *regexp.Regexp, s, repl string) string {
	return pat.ReplaceAllString(s, repl)
}

// MatchAny reports whether pat matches anywhere in s, the predicate behind
// `/pat/` and `!/pat/` (spec.md §4.6).
func MatchAny(pat *regexp.Regexp, s string) bool {
	return pat.MatchString(s)
}

// FindAll returns every non-overlapping match of pat in s, the `m/pat/`
// operator (spec.md §4.6). Zero matches yield an empty, non-nil slice,
// which the caller renders as an empty array, not an absence.
func FindAll(pat *regexp.Regexp, s string) []string {
	matches := pat.FindAllString(s, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
