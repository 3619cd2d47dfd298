package eval

import (
	"strings"

	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/value"
)

// opSplit implements `s`: splits each direct string child of the focused
// array per the level rule in spec.md §3, leaving non-string children
// untouched.
func (e *evaluator) opSplit(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		level := value.LevelAtDepth(e.depth)
		elems := arr.Elements()
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			s, ok := el.(value.String)
			if !ok {
				out[i] = el
				continue
			}
			pieces, ok := value.SplitAtLevel(level, string(s))
			if !ok {
				return nil, e.errorf(op, "cannot split: already at char level")
			}
			out[i] = stringsToArray(pieces)
		}
		return value.NewArray(out...), nil
	}
}

// opSplitDelim implements `S<delim>`: same shape as `s`, but the delimiter
// is the literal one parsed from the op instead of the level table. In
// CSV mode (-c), double-quoted fields are respected (spec.md §6).
func (e *evaluator) opSplitDelim(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		elems := arr.Elements()
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			s, ok := el.(value.String)
			if !ok {
				out[i] = el
				continue
			}
			var pieces []string
			if e.opts.CSV {
				pieces = value.SplitCSV(string(s), op.Delim)
			} else {
				pieces = value.SplitDelim(string(s), op.Delim)
			}
			out[i] = stringsToArray(pieces)
		}
		return value.NewArray(out...), nil
	}
}

// opJoinChildren implements `j`: for each array child of the focused
// array, concatenate its elements with the delimiter belonging to the
// child's own level — one level deeper than focus (spec.md §4.4).
func (e *evaluator) opJoinChildren() func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		childLevel := value.LevelAtDepth(e.depth + 1)
		elems := arr.Elements()
		out := make([]value.Value, len(elems))
		for i, el := range elems {
			if _, ok := el.(value.Array); ok {
				out[i] = value.String(value.Stringify(el, childLevel))
			} else {
				out[i] = el
			}
		}
		return value.NewArray(out...), nil
	}
}

// opJoinSelf implements `J<delim>`: joins the focused array's own elements
// with a literal delimiter into a single string. In CSV mode (-c), fields
// needing it are double-quoted (spec.md §6).
func (e *evaluator) opJoinSelf(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		childLevel := value.LevelAtDepth(e.depth + 1)
		elems := arr.Elements()
		parts := make([]string, len(elems))
		for i, el := range elems {
			parts[i] = value.Stringify(el, childLevel)
		}
		if e.opts.CSV {
			return value.String(value.JoinCSV(parts, op.Delim)), nil
		}
		return value.String(strings.Join(parts, op.Delim)), nil
	}
}

// opFlatten implements `f`: splices the elements of every array child into
// the focused array, leaving non-array children in place.
func (e *evaluator) opFlatten() func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		var out []value.Value
		for _, el := range arr.Elements() {
			if child, ok := el.(value.Array); ok {
				out = append(out, child.Elements()...)
			} else {
				out = append(out, el)
			}
		}
		return value.NewArray(out...), nil
	}
}

func stringsToArray(ss []string) value.Array {
	vs := make([]value.Value, len(ss))
	for i, s := range ss {
		vs[i] = value.String(s)
	}
	return value.NewArray(vs...)
}
