package value

import (
	"math"

	"tlang.dev/pkg/persistent/hash"
)

// Hash returns a bucket hash for v, used by the `d`/`g`/`D` reduce ops
// (spec.md §4.7) to bucket candidates before falling back to Equal for the
// final structural comparison — the same two-step shape as a persistent
// hash map lookup, built from the DJB combinator in persistent/hash.
func Hash(v Value) uint32 {
	switch v := v.(type) {
	case Number:
		return hash.UInt64(math.Float64bits(v.Float64()))
	case String:
		return hash.String(string(v))
	case Array:
		h := hash.DJBInit
		for _, e := range v.Elements() {
			h = hash.DJBCombine(h, Hash(e))
		}
		return h
	default:
		panic("value: unknown variant")
	}
}
