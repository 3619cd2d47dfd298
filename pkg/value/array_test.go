package value

import (
	"encoding/json"
	"testing"
)

func TestArrayIndexAndLen(t *testing.T) {
	a := NewArray(String("a"), String("b"), String("c"))
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if a.Index(0) != String("a") || a.Index(2) != String("c") {
		t.Errorf("Index mismatch: %v, %v", a.Index(0), a.Index(2))
	}
}

func TestArraySliceExcludesEnd(t *testing.T) {
	a := NewArray(Int(1), Int(2), Int(3), Int(4))
	sub := a.Slice(1, 3)
	if sub.Len() != 2 || sub.Index(0) != Int(2) || sub.Index(1) != Int(3) {
		t.Errorf("Slice(1,3) = %v", sub.Elements())
	}
}

func TestArrayAssocDoesNotMutateOriginal(t *testing.T) {
	a := NewArray(String("a"), String("b"))
	b := a.Assoc(0, String("z"))
	if a.Index(0) != String("a") {
		t.Errorf("original array mutated: %v", a.Index(0))
	}
	if b.Index(0) != String("z") {
		t.Errorf("Assoc result wrong: %v", b.Index(0))
	}
}

func TestArrayConjAppends(t *testing.T) {
	a := NewArray(String("a"))
	b := a.Conj(String("b"))
	if a.Len() != 1 {
		t.Errorf("original array grew: len %d", a.Len())
	}
	if b.Len() != 2 || b.Index(1) != String("b") {
		t.Errorf("Conj result wrong: %v", b.Elements())
	}
}

func TestEmptyArrayMarshalsAsEmptyJSONArray(t *testing.T) {
	out, err := json.Marshal(EmptyArray)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[]" {
		t.Errorf("MarshalJSON(EmptyArray) = %s, want []", out)
	}
}

func TestArrayMarshalJSONNested(t *testing.T) {
	a := NewArray(Int(1), NewArray(String("a"), String("b")))
	out, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `[1,["a","b"]]` {
		t.Errorf("MarshalJSON = %s, want [1,[\"a\",\"b\"]]", out)
	}
}
