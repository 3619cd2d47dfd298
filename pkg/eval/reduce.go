package eval

import (
	"sort"
	"strings"

	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/value"
)

// opSort implements `o` (descending) / `O` (ascending): a stable sort of
// the focused array under the polymorphic total order (spec.md §4.7).
func (e *evaluator) opSort(descending bool) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		elems := arr.Elements()
		sort.SliceStable(elems, func(i, j int) bool {
			o := value.Cmp(elems[i], elems[j])
			if descending {
				return o == value.Greater
			}
			return o == value.Less
		})
		return value.NewArray(elems...), nil
	}
}

type bucket struct {
	key     value.Value
	members []value.Value
}

// groupBy buckets arr's elements by keyFn's structural-equality result, in
// first-occurrence order. Candidates are pre-filtered by value.Hash before
// the O(n) value.Equal fallback, the same two-step shape as a persistent
// hash map lookup, so a large array of distinct keys stays close to linear
// instead of quadratic.
func groupBy(arr value.Array, keyFn func(value.Value) (value.Value, error)) ([]bucket, error) {
	var buckets []bucket
	byHash := make(map[uint32][]int)
	for _, el := range arr.Elements() {
		key, err := keyFn(el)
		if err != nil {
			return nil, err
		}
		h := value.Hash(key)
		found := false
		for _, i := range byHash[h] {
			if value.Equal(buckets[i].key, key) {
				buckets[i].members = append(buckets[i].members, el)
				found = true
				break
			}
		}
		if !found {
			byHash[h] = append(byHash[h], len(buckets))
			buckets = append(buckets, bucket{key: key, members: []value.Value{el}})
		}
	}
	return buckets, nil
}

// opGroup implements `g<sel>`: groups children by applying sel to each
// (which must itself be an Array or String), in first-occurrence key
// order (spec.md §4.7).
func (e *evaluator) opGroup(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		buckets, err := groupBy(arr, func(el value.Value) (value.Value, error) {
			switch el.(type) {
			case value.Array, value.String:
				return applySelectionToValue(op.Sel, el)
			default:
				return nil, e.errorf(op, "cannot group: expected array or string, got %s", el.Kind())
			}
		})
		if err != nil {
			return nil, e.selErr(op, err)
		}
		out := make([]value.Value, len(buckets))
		for i, b := range buckets {
			out[i] = value.NewArray(b.key, value.NewArray(b.members...))
		}
		return value.NewArray(out...), nil
	}
}

// opDedupe implements `d`: counts each distinct child by structural
// equality, sorted by count descending, ties broken by first occurrence.
func (e *evaluator) opDedupe() func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		buckets, _ := groupBy(arr, func(el value.Value) (value.Value, error) { return el, nil })
		sort.SliceStable(buckets, func(i, j int) bool {
			return len(buckets[i].members) > len(buckets[j].members)
		})
		out := make([]value.Value, len(buckets))
		for i, b := range buckets {
			out[i] = value.NewArray(value.Int(int64(len(b.members))), b.key)
		}
		return value.NewArray(out...), nil
	}
}

// opDedupeSel implements `D<sel>`: like `d`, but keyed by sel applied to
// each child, with the pair's value being the first member seen for that
// key rather than the key itself.
func (e *evaluator) opDedupeSel(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		buckets, err := groupBy(arr, func(el value.Value) (value.Value, error) {
			return applySelectionToValue(op.Sel, el)
		})
		if err != nil {
			return nil, e.selErr(op, err)
		}
		sort.SliceStable(buckets, func(i, j int) bool {
			return len(buckets[i].members) > len(buckets[j].members)
		})
		out := make([]value.Value, len(buckets))
		for i, b := range buckets {
			out[i] = value.NewArray(value.Int(int64(len(b.members))), b.members[0])
		}
		return value.NewArray(out...), nil
	}
}

// opCount implements `#`: replaces the focused array with its length.
func (e *evaluator) opCount() func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		return value.Int(int64(arr.Len())), nil
	}
}

// opColumnate implements `c`: the focused array must be an array of
// arrays of strings; renders a left-aligned table with a two-space
// gutter, short rows padded with empty fields.
func (e *evaluator) opColumnate(op parse.Op) func(value.Array) (value.Value, error) {
	return func(arr value.Array) (value.Value, error) {
		childLevel := value.LevelAtDepth(e.depth + 1)
		rows := arr.Elements()
		table := make([][]string, len(rows))
		cols := 0
		for i, row := range rows {
			rowArr, ok := row.(value.Array)
			if !ok {
				return nil, e.errorf(op, "expected array of arrays, got %s", row.Kind())
			}
			cells := rowArr.Elements()
			line := make([]string, len(cells))
			for j, cell := range cells {
				line[j] = value.Stringify(cell, childLevel)
			}
			table[i] = line
			if len(line) > cols {
				cols = len(line)
			}
		}
		widths := make([]int, cols)
		for _, row := range table {
			for j, cell := range row {
				if len(cell) > widths[j] {
					widths[j] = len(cell)
				}
			}
		}
		lines := make([]string, len(table))
		for i, row := range table {
			var b strings.Builder
			for j := 0; j < cols; j++ {
				cell := ""
				if j < len(row) {
					cell = row[j]
				}
				if j > 0 {
					b.WriteString("  ")
				}
				if j < cols-1 {
					b.WriteString(cell)
					b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
				} else {
					b.WriteString(cell)
				}
			}
			lines[i] = b.String()
		}
		return value.String(strings.Join(lines, "\n")), nil
	}
}

// opPartition implements `p<sel>`: cuts the focused array or string (as
// chars) at each index sel produces over the domain [0, n), using each
// cut index as the start of a chunk (spec.md §4.7, §9).
func (e *evaluator) opPartition(op parse.Op) func(value.Value) (value.Value, error) {
	return func(v value.Value) (value.Value, error) {
		switch x := v.(type) {
		case value.Array:
			cuts, err := e.partitionCuts(op, x.Len())
			if err != nil {
				return nil, err
			}
			out := make([]value.Value, 0, len(cuts))
			for i, start := range cuts {
				end := x.Len()
				if i+1 < len(cuts) {
					end = cuts[i+1]
				}
				out = append(out, x.Slice(start, end))
			}
			return value.NewArray(out...), nil
		case value.String:
			runes := x.Runes()
			cuts, err := e.partitionCuts(op, len(runes))
			if err != nil {
				return nil, err
			}
			out := make([]value.Value, 0, len(cuts))
			for i, start := range cuts {
				end := len(runes)
				if i+1 < len(cuts) {
					end = cuts[i+1]
				}
				out = append(out, value.String(string(runes[start:end])))
			}
			return value.NewArray(out...), nil
		default:
			return nil, e.errorf(op, "expected array or string, got %s", v.Kind())
		}
	}
}

func (e *evaluator) partitionCuts(op parse.Op, n int) ([]int, error) {
	idxs, err := op.Sel.Indices(n)
	if err != nil {
		return nil, e.selErr(op, err)
	}
	sort.Ints(idxs)
	out := idxs[:0:0]
	for i, idx := range idxs {
		if i > 0 && idx == out[len(out)-1] {
			continue
		}
		out = append(out, idx)
	}
	if len(out) == 0 || out[0] != 0 {
		out = append([]int{0}, out...)
	}
	return out, nil
}
