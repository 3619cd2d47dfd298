package value

import (
	"reflect"
	"testing"
)

func TestSplitLinesNoTrailingEmpty(t *testing.T) {
	got := SplitLines("a\nb\nc")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitLinesEmptyLinesPreserved(t *testing.T) {
	got := SplitLines("a\n\nb")
	want := []string{"a", "", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitLinesStripsOneTrailingTerminator(t *testing.T) {
	got := SplitLines("1\n2\n3\n4\n")
	want := []string{"1", "2", "3", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitLinesTrailingTerminatorKeepsEmptyLinesBeforeIt(t *testing.T) {
	got := SplitLines("a\n\n")
	want := []string{"a", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitWordsDropsRuns(t *testing.T) {
	got := SplitWords("  The   cat  sat ")
	want := []string{"The", "cat", "sat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitWords = %v, want %v", got, want)
	}
}

func TestSplitCharsRuneAware(t *testing.T) {
	got := SplitChars("héllo")
	want := []string{"h", "é", "l", "l", "o"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitChars = %v, want %v", got, want)
	}
}

func TestSplitAtLevelCharHasNoFurtherSplit(t *testing.T) {
	_, ok := SplitAtLevel(LevelChar, "abc")
	if ok {
		t.Error("SplitAtLevel(LevelChar, ...) should report ok=false")
	}
}

func TestJoinDelimiterTable(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelLine, "\n"},
		{LevelWord, " "},
		{LevelChar, ""},
	}
	for _, c := range cases {
		if got := JoinDelimiter(c.level); got != c.want {
			t.Errorf("JoinDelimiter(%v) = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestSplitJoinWordsRoundTrip(t *testing.T) {
	s := "the cat sat"
	words := SplitWords(s)
	if got := JoinWords(words); got != s {
		t.Errorf("JoinWords(SplitWords(%q)) = %q, want %q", s, got, s)
	}
}

func TestLevelAtDepthSaturatesAtChar(t *testing.T) {
	if got := LevelAtDepth(0); got != LevelLine {
		t.Errorf("LevelAtDepth(0) = %v, want LevelLine", got)
	}
	if got := LevelAtDepth(1); got != LevelWord {
		t.Errorf("LevelAtDepth(1) = %v, want LevelWord", got)
	}
	if got := LevelAtDepth(2); got != LevelChar {
		t.Errorf("LevelAtDepth(2) = %v, want LevelChar", got)
	}
	if got := LevelAtDepth(5); got != LevelChar {
		t.Errorf("LevelAtDepth(5) = %v, want LevelChar (saturated)", got)
	}
}
