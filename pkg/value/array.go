package value

import (
	"encoding/json"

	"tlang.dev/pkg/persistent/vector"
)

// Array is an ordered, zero-indexed, immutable sequence of Values, backed
// by a persistent vector so that the structural operators (split,
// flatten, selection, filters) can build new Arrays by sharing structure
// with their input instead of copying it wholesale.
type Array struct {
	v vector.Vector
}

func (Array) Kind() string { return "array" }

// EmptyArray is the empty Array.
var EmptyArray = Array{vector.Empty}

// NewArray builds an Array from a slice of Values.
func NewArray(vs ...Value) Array {
	v := vector.Empty
	for _, x := range vs {
		v = v.Conj(x)
	}
	return Array{v}
}

// Len returns the number of elements in the Array.
func (a Array) Len() int { return a.v.Len() }

// Index returns the i-th element. i must be in [0, Len()).
func (a Array) Index(i int) Value {
	x, ok := a.v.Index(i)
	if !ok {
		panic("value: index out of range")
	}
	return x.(Value)
}

// Conj returns a new Array with val appended.
func (a Array) Conj(val Value) Array { return Array{a.v.Conj(val)} }

// Assoc returns a new Array with the i-th element replaced by val.
func (a Array) Assoc(i int, val Value) Array { return Array{a.v.Assoc(i, val)} }

// Slice returns the subarray [i, j).
func (a Array) Slice(i, j int) Array { return Array{a.v.SubVector(i, j)} }

// Elements returns the Array's elements as a plain Go slice, for callers
// (selection, sort, group, dedupe) that need random access or want to
// build a new ordering from scratch.
func (a Array) Elements() []Value {
	out := make([]Value, 0, a.Len())
	for it := a.v.Iterator(); it.HasElem(); it.Next() {
		out = append(out, it.Elem().(Value))
	}
	return out
}

// MarshalJSON renders the Array as a JSON array, delegating to the
// persistent vector's own marshaler (spec.md §6).
func (a Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v)
}
