package eval

import (
	"fmt"
	"strings"
	"unicode"

	"tlang.dev/pkg/eval/re"
	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/value"
)

func leafLower(s value.String) (value.Value, error) {
	return value.String(strings.ToLower(string(s))), nil
}

func leafUpper(s value.String) (value.Value, error) {
	return value.String(strings.ToUpper(string(s))), nil
}

func leafTrim(s value.String) (value.Value, error) {
	return value.String(strings.TrimFunc(string(s), unicode.IsSpace)), nil
}

func leafToNumber(s value.String) (value.Value, error) {
	n, ok := value.ParseNumber(string(s))
	if !ok {
		return nil, fmt.Errorf("not a number: %s", string(s))
	}
	return n, nil
}

func leafReplace(op parse.Op) func(value.String) (value.Value, error) {
	return func(s value.String) (value.Value, error) {
		return value.String(re.ReplaceAll(op.Pattern, string(s), op.Replacement)), nil
	}
}

// elementwise recurses through v, transforming every String leaf with leaf
// and leaving Numbers and Array shape untouched — the intrinsic
// recursion-through-nested-arrays behavior of l/u/t/unary-r (spec.md
// §4.3, §4.5).
func (e *evaluator) elementwise(leaf func(value.String) (value.Value, error)) func(value.Value) (value.Value, error) {
	return func(v value.Value) (value.Value, error) {
		return recurseLeaves(v, leaf)
	}
}

// elementwiseErr is elementwise for leaf functions that can fail with a
// message that needs to become an *Error anchored at op (e.g. `n`'s "not a
// number").
func (e *evaluator) elementwiseErr(op parse.Op, leaf func(value.String) (value.Value, error)) func(value.Value) (value.Value, error) {
	return func(v value.Value) (value.Value, error) {
		nv, err := recurseLeaves(v, leaf)
		if err != nil {
			return nil, e.errorf(op, "%v", err)
		}
		return nv, nil
	}
}

// recurseLeaves walks v, applying leaf to every String it finds, rebuilding
// Arrays with the same shape, and passing Numbers through unchanged.
func recurseLeaves(v value.Value, leaf func(value.String) (value.Value, error)) (value.Value, error) {
	switch x := v.(type) {
	case value.String:
		return leaf(x)
	case value.Number:
		return x, nil
	case value.Array:
		elems := x.Elements()
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			nv, err := recurseLeaves(el, leaf)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return value.NewArray(out...), nil
	default:
		return v, nil
	}
}

// opSelectedTransform applies leaf directly to the elements of arr named
// by op.Sel, without recursing into them — the L/U/T/r[sel] behavior that
// is explicitly *not* deep (spec.md §4.5).
func (e *evaluator) opSelectedTransform(op parse.Op, leaf func(value.String) (value.Value, error)) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		return e.applyToSelected(arr, op, func(x value.Value) (value.Value, error) {
			s, ok := x.(value.String)
			if !ok {
				return nil, e.errorf(op, "expected string, got %s", x.Kind())
			}
			return leaf(s)
		})
	}
}

func (e *evaluator) opSelectedTransformErr(op parse.Op, leaf func(value.String) (value.Value, error)) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		return e.applyToSelected(arr, op, func(x value.Value) (value.Value, error) {
			s, ok := x.(value.String)
			if !ok {
				return nil, e.errorf(op, "expected string, got %s", x.Kind())
			}
			nv, err := leaf(s)
			if err != nil {
				return nil, e.errorf(op, "%v", err)
			}
			return nv, nil
		})
	}
}

func (e *evaluator) applyToSelected(arr value.Array, op parse.Op, f func(value.Value) (value.Value, error)) (value.Value, error) {
	idxs, err := op.Sel.Indices(arr.Len())
	if err != nil {
		return nil, e.selErr(op, err)
	}
	elems := arr.Elements()
	for _, i := range idxs {
		nv, err := f(elems[i])
		if err != nil {
			return nil, err
		}
		elems[i] = nv
	}
	return value.NewArray(elems...), nil
}

// sumLeaves sums every numeric leaf beneath v, coercing strings the same
// lenient way `+` requires: non-numeric strings contribute zero rather
// than erroring (spec.md §4.7, §7).
func sumLeaves(v value.Value) value.Number {
	switch x := v.(type) {
	case value.Number:
		return x
	case value.String:
		return value.ParseNumberLenient(string(x))
	case value.Array:
		total := value.Int(0)
		for _, el := range x.Elements() {
			total = total.Add(sumLeaves(el))
		}
		return total
	default:
		return value.Int(0)
	}
}
