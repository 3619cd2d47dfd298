// Package eval implements the evaluator (spec.md §4.8): it threads a
// focus stack through a parsed op list, applying each op's handler to the
// current Value and replacing it, and halts at the first error, which
// carries the offending op's source range (not its position in the op
// list).
package eval

import "tlang.dev/pkg/diag"

// ErrorTag parameterizes diag.Error to produce EvalError, distinct from
// parse.Error at the type level so callers can tell the two apart with
// errors.As.
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "eval error" }

// Error is an evaluation error, reported with the source range of the
// offending op (spec.md §7).
type Error = diag.Error[ErrorTag]
