package eval

import (
	"errors"
	"fmt"

	"tlang.dev/pkg/diag"
	"tlang.dev/pkg/logutil"
	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/selection"
	"tlang.dev/pkg/value"
)

var logger = logutil.GetLogger("[eval] ")

// Options configures evaluation with the handful of CLI flags that reach
// into op semantics rather than just rendering (spec.md §6).
type Options struct {
	// CSV makes S<delim>/J<delim> respect double-quoted fields per -c.
	CSV bool
}

// evaluator holds the mutable state threaded through a program: the
// source (for error ranges) and the focus depth that `@`/`^` adjust
// (spec.md §4.3).
type evaluator struct {
	src   string
	depth int
	opts  Options
}

// Eval runs prog against input, returning the final Value or the first
// error encountered, reported against the offending op's source range
// (spec.md §4.8).
func Eval(prog parse.Program, input value.Value, opts Options) (value.Value, error) {
	e := &evaluator{src: prog.Source, opts: opts}
	v := input
	for i, op := range prog.Ops {
		nv, err := e.step(op, v)
		if err != nil {
			logger.Printf("op %d (%v) failed: %v", i, op.Kind, err)
			return nil, err
		}
		v = nv
	}
	return v, nil
}

func (e *evaluator) errorf(op parse.Op, format string, args ...interface{}) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext("<program>", e.src, op.Ranging),
	}
}

func (e *evaluator) selErr(op parse.Op, err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	if errors.Is(err, selection.ErrIndexOutOfRange) {
		return &Error{Message: err.Error(), Context: *diag.NewContext("<program>", e.src, op.Ranging)}
	}
	return e.errorf(op, "%v", err)
}

func (e *evaluator) step(op parse.Op, v value.Value) (value.Value, error) {
	switch op.Kind {
	case parse.OpFocusDown:
		e.depth++
		return v, nil
	case parse.OpFocusUp:
		if e.depth > 0 {
			e.depth--
		}
		return v, nil
	case parse.OpNoop:
		return v, nil
	default:
		return e.dispatch(op, v)
	}
}

// atDepth descends depth levels into v along the array spine, requiring an
// Array at every intermediate level (spec.md §4.3: "at depth < k, V must
// be an Array"), then calls f on whatever sits at depth k — an Array, a
// String, or a Number. f is responsible for rejecting kinds it cannot
// handle.
func (e *evaluator) atDepth(v value.Value, depth int, op parse.Op, f func(value.Value) (value.Value, error)) (value.Value, error) {
	if depth == 0 {
		return f(v)
	}
	arr, ok := v.(value.Array)
	if !ok {
		return nil, e.errorf(op, "cannot descend: not an array")
	}
	elems := arr.Elements()
	out := make([]value.Value, len(elems))
	for i, el := range elems {
		nv, err := e.atDepth(el, depth-1, op, f)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return value.NewArray(out...), nil
}

// atDepthArray is atDepth narrowed to handlers that require the focused
// value itself to be an Array, the shape every structural op and
// reduction needs (spec.md §4.4, §4.7).
func (e *evaluator) atDepthArray(v value.Value, depth int, op parse.Op, f func(value.Array) (value.Value, error)) (value.Value, error) {
	return e.atDepth(v, depth, op, func(x value.Value) (value.Value, error) {
		arr, ok := x.(value.Array)
		if !ok {
			return nil, e.errorf(op, "expected array, got %s", x.Kind())
		}
		return f(arr)
	})
}

func (e *evaluator) dispatch(op parse.Op, v value.Value) (value.Value, error) {
	switch op.Kind {
	case parse.OpSplit:
		return e.atDepthArray(v, e.depth, op, e.opSplit(op))
	case parse.OpSplitDelim:
		return e.atDepthArray(v, e.depth, op, e.opSplitDelim(op))
	case parse.OpJoinChildren:
		return e.atDepthArray(v, e.depth, op, e.opJoinChildren())
	case parse.OpJoinSelf:
		return e.atDepthArray(v, e.depth, op, e.opJoinSelf(op))
	case parse.OpFlatten:
		return e.atDepthArray(v, e.depth, op, e.opFlatten())

	case parse.OpLower:
		return e.atDepth(v, e.depth, op, e.elementwise(leafLower))
	case parse.OpUpper:
		return e.atDepth(v, e.depth, op, e.elementwise(leafUpper))
	case parse.OpTrim:
		return e.atDepth(v, e.depth, op, e.elementwise(leafTrim))
	case parse.OpToNumber:
		return e.atDepth(v, e.depth, op, e.elementwiseErr(op, leafToNumber))
	case parse.OpReplace:
		if len(op.Sel.Items) == 0 {
			return e.atDepth(v, e.depth, op, e.elementwise(leafReplace(op)))
		}
		return e.atDepthArray(v, e.depth, op, e.opSelectedTransform(op, leafReplace(op)))
	case parse.OpLowerSel:
		return e.atDepthArray(v, e.depth, op, e.opSelectedTransform(op, leafLower))
	case parse.OpUpperSel:
		return e.atDepthArray(v, e.depth, op, e.opSelectedTransform(op, leafUpper))
	case parse.OpTrimSel:
		return e.atDepthArray(v, e.depth, op, e.opSelectedTransform(op, leafTrim))
	case parse.OpToNumberSel:
		return e.atDepthArray(v, e.depth, op, e.opSelectedTransformErr(op, leafToNumber))

	case parse.OpFilterMatch:
		return e.atDepthArray(v, e.depth, op, e.opFilter(op, true))
	case parse.OpFilterNotMatch:
		return e.atDepthArray(v, e.depth, op, e.opFilter(op, false))
	case parse.OpMatchAll:
		return e.atDepthArray(v, e.depth, op, e.opMatchAll(op))
	case parse.OpDeleteEmpty:
		return e.atDepthArray(v, e.depth, op, e.opDeleteEmpty())

	case parse.OpSelect:
		return e.atDepth(v, e.depth, op, e.opSelect(op))
	case parse.OpSortDesc:
		return e.atDepthArray(v, e.depth, op, e.opSort(true))
	case parse.OpSortAsc:
		return e.atDepthArray(v, e.depth, op, e.opSort(false))
	case parse.OpGroup:
		return e.atDepthArray(v, e.depth, op, e.opGroup(op))
	case parse.OpDedupe:
		return e.atDepthArray(v, e.depth, op, e.opDedupe())
	case parse.OpDedupeSel:
		return e.atDepthArray(v, e.depth, op, e.opDedupeSel(op))
	case parse.OpCount:
		return e.atDepthArray(v, e.depth, op, e.opCount())
	case parse.OpSum:
		return e.atDepth(v, e.depth, op, func(x value.Value) (value.Value, error) { return sumLeaves(x), nil })
	case parse.OpColumnate:
		return e.atDepthArray(v, e.depth, op, e.opColumnate(op))
	case parse.OpPartition:
		return e.atDepth(v, e.depth, op, e.opPartition(op))

	default:
		return nil, e.errorf(op, "unimplemented op")
	}
}
