package eval

import (
	"fmt"

	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/selection"
	"tlang.dev/pkg/value"
)

// applySelectionToValue evaluates sel against v (an Array, or a String
// treated as an array of chars) per spec.md §4.2: a scalar selection
// returns the single selected element (or a one-character String); an
// array selection returns an Array (or a String of joined chars).
func applySelectionToValue(sel selection.Selection, v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case value.String:
		runes := x.Runes()
		idxs, err := sel.Apply(len(runes))
		if err != nil {
			return nil, err
		}
		if sel.Scalar {
			return value.String(string(runes[idxs[0]])), nil
		}
		out := make([]rune, len(idxs))
		for i, idx := range idxs {
			out[i] = runes[idx]
		}
		return value.String(string(out)), nil
	case value.Array:
		idxs, err := sel.Apply(x.Len())
		if err != nil {
			return nil, err
		}
		if sel.Scalar {
			return x.Index(idxs[0]), nil
		}
		out := make([]value.Value, len(idxs))
		for i, idx := range idxs {
			out[i] = x.Index(idx)
		}
		return value.NewArray(out...), nil
	default:
		return nil, fmt.Errorf("cannot select into %s", v.Kind())
	}
}

// opSelect implements the bare selection op: collapse the focused value
// per applySelectionToValue.
func (e *evaluator) opSelect(op parse.Op) func(value.Value) (value.Value, error) {
	return func(v value.Value) (value.Value, error) {
		nv, err := applySelectionToValue(op.Sel, v)
		if err != nil {
			return nil, e.selErr(op, err)
		}
		return nv, nil
	}
}
