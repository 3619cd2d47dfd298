package value

import "testing"

func TestStringifyLeaf(t *testing.T) {
	if got := Stringify(String("hi"), LevelWord); got != "hi" {
		t.Errorf("Stringify(String) = %q, want hi", got)
	}
	if got := Stringify(Int(42), LevelWord); got != "42" {
		t.Errorf("Stringify(Number) = %q, want 42", got)
	}
}

func TestStringifyArrayOfWords(t *testing.T) {
	arr := NewArray(String("the"), String("cat"))
	if got := Stringify(arr, LevelWord); got != "the cat" {
		t.Errorf("Stringify(words) = %q, want %q", got, "the cat")
	}
}

func TestStringifyArrayOfLines(t *testing.T) {
	arr := NewArray(String("a"), String("b"))
	if got := Stringify(arr, LevelLine); got != "a\nb" {
		t.Errorf("Stringify(lines) = %q, want %q", got, "a\nb")
	}
}

func TestStringifyNestedRecursesToNextLevel(t *testing.T) {
	arr := NewArray(NewArray(String("a"), String("b")), NewArray(String("c")))
	got := Stringify(arr, LevelLine)
	want := "a b\nc"
	if got != want {
		t.Errorf("Stringify(nested) = %q, want %q", got, want)
	}
}

func TestStringifyAtCharLevelHasNoSeparator(t *testing.T) {
	arr := NewArray(String("a"), String("b"), String("c"))
	if got := Stringify(arr, LevelChar); got != "abc" {
		t.Errorf("Stringify(chars) = %q, want abc", got)
	}
}
