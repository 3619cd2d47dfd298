// Package parse implements the lexer/parser (spec.md §4.1): it consumes a
// program string and produces an ordered list of Ops, each carrying its
// literal fragments (regex patterns, replacement text, selections)
// pre-parsed and, for regex ops, pre-compiled.
package parse

import (
	"regexp"

	"tlang.dev/pkg/diag"
	"tlang.dev/pkg/logutil"
	"tlang.dev/pkg/selection"
)

var logger = logutil.GetLogger("[parse] ")

// ErrorTag parameterizes diag.Error to produce ParseError.
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "parse error" }

// Error is a parse error: a malformed program, reported with the 0-based
// byte offset of the offending rune (spec.md §4.1, §7); after a non-ASCII
// character this differs from the character count.
type Error = diag.Error[ErrorTag]

// Kind identifies which of the op families (spec.md §4.4–§4.7, §4.3) an
// Op belongs to.
type Kind int

const (
	// Structural (§4.4)
	OpSplit Kind = iota
	OpSplitDelim
	OpJoinChildren
	OpJoinSelf
	OpFlatten

	// Transforms (§4.5)
	OpLower
	OpUpper
	OpLowerSel
	OpUpperSel
	OpToNumber
	OpToNumberSel
	OpTrim
	OpTrimSel
	OpReplace

	// Filters (§4.6)
	OpFilterMatch
	OpFilterNotMatch
	OpMatchAll
	OpDeleteEmpty

	// Reductions (§4.7)
	OpSelect
	OpSortDesc
	OpSortAsc
	OpGroup
	OpDedupe
	OpDedupeSel
	OpCount
	OpSum
	OpColumnate
	OpPartition

	// Navigation (§4.3)
	OpFocusDown
	OpFocusUp
	OpNoop
)

var kindNames = [...]string{
	OpSplit:          "split",
	OpSplitDelim:     "split-delim",
	OpJoinChildren:   "join-children",
	OpJoinSelf:       "join-self",
	OpFlatten:        "flatten",
	OpLower:          "lower",
	OpUpper:          "upper",
	OpLowerSel:       "lower-sel",
	OpUpperSel:       "upper-sel",
	OpToNumber:       "to-number",
	OpToNumberSel:    "to-number-sel",
	OpTrim:           "trim",
	OpTrimSel:        "trim-sel",
	OpReplace:        "replace",
	OpFilterMatch:    "filter-match",
	OpFilterNotMatch: "filter-not-match",
	OpMatchAll:       "match-all",
	OpDeleteEmpty:    "delete-empty",
	OpSelect:         "select",
	OpSortDesc:       "sort-desc",
	OpSortAsc:        "sort-asc",
	OpGroup:          "group",
	OpDedupe:         "dedupe",
	OpDedupeSel:      "dedupe-sel",
	OpCount:          "count",
	OpSum:            "sum",
	OpColumnate:      "columnate",
	OpPartition:      "partition",
	OpFocusDown:      "focus-down",
	OpFocusUp:        "focus-up",
	OpNoop:           "noop",
}

// String names the op family, used by the parse-tree and explain dumps
// (-p/-e).
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Op is one parsed operator, positioned in the source by Ranging so that
// EvalError can report "the index of the offending op" (spec.md §7) by
// reporting its source range instead.
type Op struct {
	diag.Ranging
	Kind Kind

	// Populated for ops that carry a selection: L/U/N/T/D/g/p and the
	// bare selection op itself.
	Sel selection.Selection

	// Populated for S<delim>/J<delim>.
	Delim string

	// Populated for the regex-bracketed ops (/pat/, !/pat/, m/pat/) and
	// for r, which also uses Replacement.
	Pattern     *regexp.Regexp
	PatternSrc  string
	Replacement string
}

// Program is the ordered list of Ops the parser produces from a source
// string.
type Program struct {
	Source string
	Ops    []Op
}

// Parse lexes and parses src into a Program, or returns a *Error on
// malformed input.
func Parse(src string) (Program, error) {
	p := &parser{src: src}
	ops, err := p.parseProgram()
	if err != nil {
		logger.Printf("parse error in %q: %v", src, err)
		return Program{}, err
	}
	logger.Printf("parsed %q into %d ops", src, len(ops))
	return Program{Source: src, Ops: ops}, nil
}
