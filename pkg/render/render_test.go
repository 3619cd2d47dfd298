package render

import (
	"testing"

	"tlang.dev/pkg/value"
)

func TestTextString(t *testing.T) {
	if got := Text(value.String("hello"), "\n", false); got != "hello" {
		t.Errorf("Text(String) = %q, want hello", got)
	}
}

func TestTextNumber(t *testing.T) {
	if got := Text(value.Int(42), "\n", false); got != "42" {
		t.Errorf("Text(Number) = %q, want 42", got)
	}
}

func TestTextArrayDefaultDelimiter(t *testing.T) {
	arr := value.NewArray(value.String("a"), value.String("b"))
	if got := Text(arr, "\n", false); got != "a\nb" {
		t.Errorf("Text(array) = %q, want a\\nb", got)
	}
}

func TestTextArrayCustomDelimiter(t *testing.T) {
	arr := value.NewArray(value.String("a"), value.String("b"))
	if got := Text(arr, ",", false); got != "a,b" {
		t.Errorf("Text(array, ',') = %q, want a,b", got)
	}
}

func TestTextArrayNestedUsesOneLevelDeeper(t *testing.T) {
	arr := value.NewArray(value.NewArray(value.String("a"), value.String("b")), value.String("c"))
	got := Text(arr, "\n", false)
	want := "a b\nc"
	if got != want {
		t.Errorf("Text(nested) = %q, want %q", got, want)
	}
}

func TestTextArrayCSVModeQuotesFields(t *testing.T) {
	arr := value.NewArray(value.String("a,b"), value.String("c"))
	got := Text(arr, ",", true)
	want := `"a,b",c`
	if got != want {
		t.Errorf("Text(csv) = %q, want %q", got, want)
	}
}

func TestJSONRoundTripShape(t *testing.T) {
	arr := value.NewArray(value.Int(1), value.String("a"), value.NewArray(value.Int(2)))
	out, err := JSON(arr)
	if err != nil {
		t.Fatal(err)
	}
	want := `[1,"a",[2]]`
	if string(out) != want {
		t.Errorf("JSON = %s, want %s", out, want)
	}
}
