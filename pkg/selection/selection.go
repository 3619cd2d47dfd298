// Package selection implements the reduce specification shared by the
// bare selection op, and by L/U/N/T/g/D/p's trailing <sel> argument:
// spec.md §4.2's grammar of comma-separated indices and slices.
package selection

import (
	"errors"
	"fmt"
)

// Item is either a single signed Index or a Slice.
type Item struct {
	Index   int // valid when !IsSlice
	IsSlice bool
	Slice   Slice
}

// Slice is start:end:step, with nil meaning "defaulted" per spec.md §4.2.
type Slice struct {
	Start, End, Step *int
}

// Selection is an ordered list of Items. Scalar is true when the selection
// is syntactically a single bare index (spec.md §4.1): such a selection
// returns a single element instead of an array, a distinction fixed at
// parse time, not inferred from the result.
type Selection struct {
	Items  []Item
	Scalar bool
}

// ErrIndexOutOfRange is returned (wrapped with the offending index) when a
// scalar index falls outside [0, n) after normalization.
var ErrIndexOutOfRange = errors.New("index out of range")

// enumerate returns the normalized, in-range indices the selection selects
// out of a target of length n, in order, exactly matching spec.md §4.2's
// multi-item concatenation rule.
func (s Selection) enumerate(n int) ([]int, error) {
	var out []int
	for _, it := range s.Items {
		if it.IsSlice {
			out = append(out, it.Slice.enumerate(n)...)
			continue
		}
		idx, err := normalizeIndex(it.Index, n)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}

// Indices is like enumerate, but exported for callers (e.g. `p`) that need
// the raw index sequence rather than a rebuilt target.
func (s Selection) Indices(n int) ([]int, error) { return s.enumerate(n) }

func normalizeIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return i, nil
}

// enumerate returns the sequence of indices a slice produces out of a
// target of length n, applying spec.md §4.2's defaulting rules.
func (sl Slice) enumerate(n int) []int {
	step := 1
	if sl.Step != nil {
		step = *sl.Step
	}
	var start, end int
	if step > 0 {
		start, end = 0, n
	} else {
		start, end = n-1, -n-1
	}
	if sl.Start != nil {
		start = normalizeSliceBound(*sl.Start, n)
	}
	if sl.End != nil {
		end = normalizeSliceBound(*sl.End, n)
	}

	var out []int
	if step > 0 {
		for idx := start; idx < end && idx < n; idx += step {
			if idx >= 0 {
				out = append(out, idx)
			}
		}
	} else {
		for idx := start; idx > end && idx >= 0; idx += step {
			if idx < n {
				out = append(out, idx)
			}
		}
	}
	return out
}

func normalizeSliceBound(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}

// Apply evaluates the selection against a target of length n, returning
// the selected indices in order. The caller (pkg/eval's
// applySelectionToValue) is
// responsible for turning those indices into a scalar or array result per
// spec.md §4.2's String/Array rules.
func (s Selection) Apply(n int) ([]int, error) { return s.enumerate(n) }
