package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/value"
)

func lineArray(lines ...string) value.Value {
	vs := make([]value.Value, len(lines))
	for i, l := range lines {
		vs[i] = value.String(l)
	}
	return value.NewArray(vs...)
}

func runProgram(t *testing.T, src string, input value.Value) value.Value {
	t.Helper()
	prog, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	out, err := Eval(prog, input, Options{})
	if err != nil {
		t.Fatalf("Eval(%q) error: %v", src, err)
	}
	return out
}

func strArr(vs ...string) value.Value {
	out := make([]value.Value, len(vs))
	for i, v := range vs {
		out[i] = value.String(v)
	}
	return value.NewArray(out...)
}

// TestScenario1 is spec.md §8 scenario 1: word-frequency counting.
func TestScenario1(t *testing.T) {
	input := lineArray("The cat sat", "the cat slept")
	got := runProgram(t, "sfld:20", input)
	want := value.NewArray(
		value.NewArray(value.Int(2), value.String("the")),
		value.NewArray(value.Int(2), value.String("cat")),
		value.NewArray(value.Int(1), value.String("sat")),
		value.NewArray(value.Int(1), value.String("slept")),
	)
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestScenario2 is spec.md §8 scenario 2: colon-delimited field selection.
func TestScenario2(t *testing.T) {
	input := lineArray("root:x:0:0:root:/root:/bin/bash")
	got := runProgram(t, "S:@0,-1", input)
	want := value.NewArray(strArr("root", "/bin/bash"))
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestScenario3 is spec.md §8 scenario 3: numeric sum.
func TestScenario3(t *testing.T) {
	input := lineArray("1", "2", "3", "4")
	got := runProgram(t, "n+", input)
	want := value.Int(10)
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestScenario4 is spec.md §8 scenario 4: flatten all regex matches.
func TestScenario4(t *testing.T) {
	input := lineArray("price: $42, qty: 7")
	got := runProgram(t, `m/\d+/f`, input)
	want := strArr("42", "7")
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestScenario5 is spec.md §8 scenario 5: chained match/non-match filters.
func TestScenario5(t *testing.T) {
	input := lineArray("ok", "fail A", "fail expected B")
	got := runProgram(t, "/fail/!/expected/", input)
	want := strArr("fail A")
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestScenario6 is spec.md §8 scenario 6: start-step slice selection.
func TestScenario6(t *testing.T) {
	input := lineArray("a", "b", "c", "d", "e", "f")
	got := runProgram(t, "1::3", input)
	want := strArr("b", "e")
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitJoinInverse(t *testing.T) {
	input := lineArray("a b c", "d e f")
	got := runProgram(t, "sj", input)
	want := input
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIdempotentLower(t *testing.T) {
	input := lineArray("ABC", "Def")
	once := runProgram(t, "l", input)
	twice := runProgram(t, "ll", input)
	if diff := cmp.Diff(once, twice, cmpValue); diff != "" {
		t.Errorf("l not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFocusBalance(t *testing.T) {
	input := value.NewArray(strArr("a", "b"), strArr("c", "d"))
	got := runProgram(t, "@l^", input)
	want := value.NewArray(strArr("a", "b"), strArr("c", "d"))
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupeCountConservation(t *testing.T) {
	input := strArr("a", "b", "a", "c", "b", "a")
	got := runProgram(t, "d", input)
	arr := got.(value.Array)
	total := 0
	for _, pair := range arr.Elements() {
		total += int(pair.(value.Array).Index(0).(value.Number).Int64())
	}
	if total != 6 {
		t.Errorf("counts sum to %d, want 6", total)
	}
}

func TestGroupPartition(t *testing.T) {
	input := value.NewArray(strArr("aa", "bb"), strArr("cc", "dd"), strArr("ee", "ff"))
	got := runProgram(t, "g0", input)
	arr := got.(value.Array)
	var members []value.Value
	for _, pair := range arr.Elements() {
		p := pair.(value.Array)
		group := p.Index(1).(value.Array)
		members = append(members, group.Elements()...)
	}
	if len(members) != input.Len() {
		t.Errorf("group members total %d, want %d", len(members), input.Len())
	}
}

func TestColumnate(t *testing.T) {
	input := value.NewArray(strArr("a", "bb"), strArr("ccc", "d"))
	got := runProgram(t, "c", input)
	want := value.String("a    bb\nccc  d")
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition(t *testing.T) {
	input := strArr("a", "b", "c", "d", "e")
	got := runProgram(t, "p::2", input)
	want := value.NewArray(strArr("a", "b"), strArr("c", "d"), strArr("e"))
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSortPolymorphic(t *testing.T) {
	input := value.NewArray(value.String("b"), value.Int(2), value.String("a"), value.Int(1))
	got := runProgram(t, "O", input)
	want := value.NewArray(value.Int(1), value.Int(2), value.String("a"), value.String("b"))
	if diff := cmp.Diff(want, got, cmpValue); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalErrorReportsOpRange(t *testing.T) {
	prog, err := parse.Parse("nn")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Eval(prog, lineArray("abc"), Options{})
	if err == nil {
		t.Fatal("expected eval error")
	}
	eerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if eerr.Context.From != 0 {
		t.Errorf("got offset %d, want 0", eerr.Context.From)
	}
}

var cmpValue = cmp.Comparer(func(a, b value.Value) bool {
	return value.Equal(a, b)
})
