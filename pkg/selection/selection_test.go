package selection

import (
	"reflect"
	"testing"
)

func idx(i int) Item { return Item{Index: i} }

func sliceItem(start, end, step *int) Item {
	return Item{IsSlice: true, Slice: Slice{start, end, step}}
}

func ip(i int) *int { return &i }

func TestSelectionApply(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		n    int
		want []int
	}{
		{
			name: "single index",
			sel:  Selection{Items: []Item{idx(2)}, Scalar: true},
			n:    6,
			want: []int{2},
		},
		{
			name: "negative index",
			sel:  Selection{Items: []Item{idx(-1)}, Scalar: true},
			n:    6,
			want: []int{5},
		},
		{
			name: "start-step slice",
			sel:  Selection{Items: []Item{sliceItem(ip(1), nil, ip(3))}},
			n:    6,
			want: []int{1, 4},
		},
		{
			name: "multi-item concatenation",
			sel:  Selection{Items: []Item{idx(0), idx(-1)}},
			n:    7,
			want: []int{0, 6},
		},
		{
			name: "full reverse",
			sel:  Selection{Items: []Item{sliceItem(nil, nil, ip(-1))}},
			n:    5,
			want: []int{4, 3, 2, 1, 0},
		},
		{
			name: "default slice colon",
			sel:  Selection{Items: []Item{sliceItem(ip(-3), ip(-1), nil)}},
			n:    5,
			want: []int{2, 3},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.sel.Apply(tc.n)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Apply() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectionOutOfRange(t *testing.T) {
	sel := Selection{Items: []Item{idx(10)}, Scalar: true}
	_, err := sel.Apply(3)
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
}
