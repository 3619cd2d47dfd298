package value

// Ordering is the result of comparing two Values.
type Ordering int

const (
	Less Ordering = iota
	EQ
	Greater
)

// typeRank gives the cross-type total order required by spec.md §4.7:
// number < string < array. This is the "compare by type first, then by
// value" shape a general value-comparison helper would take, narrowed
// from bool/num/string/list/map/structmap down to the three variants
// this language has.
func typeRank(v Value) int {
	switch v.(type) {
	case Number:
		return 0
	case String:
		return 1
	case Array:
		return 2
	default:
		panic("value: unknown variant")
	}
}

// Cmp gives the polymorphic total order spec.md §4.7 requires for `o`/`O`:
// numbers compare numerically, strings by Unicode codepoint, arrays
// lexicographically element-by-element with shorter-is-less as a
// tiebreaker, and mismatched types compare by typeRank.
func Cmp(a, b Value) Ordering {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	switch a := a.(type) {
	case Number:
		return cmpNumber(a, b.(Number))
	case String:
		return cmpString(string(a), string(b.(String)))
	case Array:
		return cmpArray(a, b.(Array))
	default:
		panic("value: unknown variant")
	}
}

func cmpInt(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return EQ
	}
}

func cmpNumber(a, b Number) Ordering {
	if a.isInt && b.isInt {
		return cmpInt64(a.i, b.i)
	}
	af, bf := a.Float64(), b.Float64()
	switch {
	case af < bf:
		return Less
	case af > bf:
		return Greater
	default:
		return EQ
	}
}

func cmpInt64(a, b int64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return EQ
	}
}

func cmpString(a, b string) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return EQ
	}
}

func cmpArray(a, b Array) Ordering {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if o := Cmp(a.Index(i), b.Index(i)); o != EQ {
			return o
		}
	}
	return cmpInt(a.Len(), b.Len())
}

// Equal reports whether a and b are structurally equal, the notion used by
// `d`/`g`/`D` (spec.md §4.7) to group and deduplicate.
func Equal(a, b Value) bool { return Cmp(a, b) == EQ }
