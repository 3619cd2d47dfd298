package eval

import (
	"tlang.dev/pkg/eval/re"
	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/value"
)

// opFilter implements `/pat/` (keep=true) and `!/pat/` (keep=false):
// children are kept or dropped based on whether their stringified form
// matches pat anywhere (spec.md §4.6).
func (e *evaluator) opFilter(op parse.Op, keep bool) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		childLevel := value.LevelAtDepth(e.depth + 1)
		var out []value.Value
		for _, el := range arr.Elements() {
			matched := re.MatchAny(op.Pattern, value.Stringify(el, childLevel))
			if matched == keep {
				out = append(out, el)
			}
		}
		return value.NewArray(out...), nil
	}
}

// opMatchAll implements `m/pat/`: each child becomes the array of all
// non-overlapping matches against its stringified form.
func (e *evaluator) opMatchAll(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		childLevel := value.LevelAtDepth(e.depth + 1)
		elems := arr.Elements()
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			matches := re.FindAll(op.Pattern, value.Stringify(el, childLevel))
			out[i] = stringsToArray(matches)
		}
		return value.NewArray(out...), nil
	}
}

// opDeleteEmpty implements `x`: drops children that are empty strings or
// empty arrays.
func (e *evaluator) opDeleteEmpty() func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		var out []value.Value
		for _, el := range arr.Elements() {
			switch x := el.(type) {
			case value.String:
				if x == "" {
					continue
				}
			case value.Array:
				if x.Len() == 0 {
					continue
				}
			}
			out = append(out, el)
		}
		return value.NewArray(out...), nil
	}
}
