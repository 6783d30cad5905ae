package pregex

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func compileConcat(t *testing.T, pres ...Pattern) *Matcher {
	t.Helper()
	m, err := Concat(pres...).Compile()
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return m
}

func TestHasMatchAndIsExactMatch(t *testing.T) {
	m := compileConcat(t, Text("abc"))

	tests := []struct {
		input    string
		hasMatch bool
		exact    bool
	}{
		{"abc", true, true},
		{"xabcx", true, false},
		{"ab", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := m.HasMatch(tt.input); got != tt.hasMatch {
			t.Errorf("HasMatch(%q) = %v, want %v", tt.input, got, tt.hasMatch)
		}
		if got := m.IsExactMatch(tt.input); got != tt.exact {
			t.Errorf("IsExactMatch(%q) = %v, want %v", tt.input, got, tt.exact)
		}
	}
}

func TestMatchesWithPos(t *testing.T) {
	m := compileConcat(t, mustOneOrMore(t, AnyDigit()))

	// Positions are rune offsets, not byte offsets.
	got := m.MatchesWithPos("αβ 12 γ 3")
	want := []MatchPos{
		{Value: "12", Start: 3, End: 5},
		{Value: "3", Start: 8, End: 9},
	}
	if len(got) != len(want) {
		t.Fatalf("MatchesWithPos = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanIsLazyAndRestartable(t *testing.T) {
	m := compileConcat(t, mustOneOrMore(t, AnyLowercaseLetter()))
	seq := m.Scan("ab cd ef")

	var first []string
	for s := range seq {
		first = append(first, s)
		if len(first) == 2 {
			break
		}
	}
	if len(first) != 2 || first[0] != "ab" || first[1] != "cd" {
		t.Fatalf("partial scan = %v", first)
	}

	var second []string
	for s := range seq {
		second = append(second, s)
	}
	if len(second) != 3 || second[0] != "ab" {
		t.Errorf("restarted scan = %v, want all three from the beginning", second)
	}
}

func TestCapturesAlignment(t *testing.T) {
	// Construction order must hold even when named and unnamed groups are
	// interleaved, although the engine numbers named groups last.
	word := mustCaptureAsGroup(mustOneOrMore(t, AnyLowercaseLetter()), "word")
	m := compileConcat(t,
		Capture(mustOneOrMore(t, AnyDigit())),
		Text("-"),
		word,
		Text("-"),
		Capture(mustOneOrMore(t, AnyDigit())),
	)

	caps := m.Captures("12-ab-34 5-x-6")
	if len(caps) != 2 {
		t.Fatalf("got %d capture tuples, want 2", len(caps))
	}
	want := [][]string{{"12", "ab", "34"}, {"5", "x", "6"}}
	for i, tuple := range caps {
		if len(tuple) != 3 {
			t.Fatalf("tuple %d has %d entries, want 3", i, len(tuple))
		}
		for j, sub := range tuple {
			if !sub.Matched || sub.Value != want[i][j] {
				t.Errorf("capture[%d][%d] = %+v, want %q", i, j, sub, want[i][j])
			}
		}
	}
}

func TestCapturesAbsentMarker(t *testing.T) {
	digits := mustOneOrMore(t, AnyDigit())
	letters := Capture(mustOneOrMore(t, AnyLowercaseLetter()))
	m, err := Either(digits, letters).Compile()
	if err != nil {
		t.Fatal(err)
	}

	caps := m.Captures("123 abc")
	if len(caps) != 2 {
		t.Fatalf("got %d capture tuples, want 2", len(caps))
	}
	absent := caps[0][0]
	if absent.Matched || absent.Start != -1 || absent.End != -1 || absent.Value != "" {
		t.Errorf("absent marker = %+v, want Matched=false with offsets -1", absent)
	}
	present := caps[1][0]
	if !present.Matched || present.Value != "abc" || present.Start != 4 || present.End != 7 {
		t.Errorf("present capture = %+v, want abc at [4,7)", present)
	}
}

func TestNamedCaptures(t *testing.T) {
	word := mustCaptureAsGroup(mustOneOrMore(t, AnyLowercaseLetter()), "word")
	m := compileConcat(t, word, Text("="), Capture(mustOneOrMore(t, AnyDigit())))

	got := m.NamedCaptures("a=1 bc=22")
	if len(got) != 2 {
		t.Fatalf("got %d maps, want 2", len(got))
	}
	if sub := got[1]["word"]; !sub.Matched || sub.Value != "bc" {
		t.Errorf("named capture = %+v, want bc", sub)
	}
	if _, ok := got[0]["missing"]; ok {
		t.Error("unexpected key in named captures")
	}
}

func TestReplace(t *testing.T) {
	m := compileConcat(t, mustOneOrMore(t, AnyDigit()))

	t.Run("all", func(t *testing.T) {
		got, err := m.Replace("a1b22c333", "#", 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != "a#b#c#" {
			t.Errorf("Replace = %q, want %q", got, "a#b#c#")
		}
	})

	t.Run("bounded", func(t *testing.T) {
		got, err := m.Replace("a1b22c333", "#", 2)
		if err != nil {
			t.Fatal(err)
		}
		if got != "a#b#c333" {
			t.Errorf("Replace = %q, want %q", got, "a#b#c333")
		}
	})

	t.Run("group reference", func(t *testing.T) {
		pair := compileConcat(t, Capture(mustOneOrMore(t, AnyLowercaseLetter())), Text("="))
		got, err := pair.Replace("key=1", "$1: ", 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != "key: 1" {
			t.Errorf("Replace = %q, want %q", got, "key: 1")
		}
	})

	t.Run("negative count", func(t *testing.T) {
		if _, err := m.Replace("a1", "#", -1); !errors.Is(err, ErrInvalidArgumentValue) {
			t.Errorf("Replace error = %v, want ErrInvalidArgumentValue", err)
		}
	})
}

func TestSplit(t *testing.T) {
	m := compileConcat(t, Text(","))
	got := m.Split("a,b,,c")
	want := []string{"a", "b", "", "c"}
	if len(got) != len(want) {
		t.Fatalf("Split = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Split[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Run("no match returns whole source", func(t *testing.T) {
		got := m.Split("abc")
		if len(got) != 1 || got[0] != "abc" {
			t.Errorf("Split = %v, want [abc]", got)
		}
	})
}

func TestFileVariants(t *testing.T) {
	m := compileConcat(t, mustOneOrMore(t, AnyDigit()))

	t.Run("matches from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.txt")
		if err := os.WriteFile(path, []byte("a1 b22"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := m.MatchesFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0] != "1" || got[1] != "22" {
			t.Errorf("MatchesFile = %v, want [1 22]", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := m.MatchesFile(filepath.Join(t.TempDir(), "missing.txt"))
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			t.Fatalf("error = %v, want *ScanError", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ScanError does not unwrap to os.ErrNotExist: %v", err)
		}
	})
}

func TestCompileErrors(t *testing.T) {
	t.Run("engine rejection surfaces as CompileError", func(t *testing.T) {
		_, err := Raw("a{2,1}").Compile()
		var compErr *CompileError
		if !errors.As(err, &compErr) {
			t.Fatalf("error = %v, want *CompileError", err)
		}
		if compErr.Pattern != "a{2,1}" {
			t.Errorf("CompileError.Pattern = %q", compErr.Pattern)
		}
	})
}

func TestPregexConvenienceMethods(t *testing.T) {
	p := Concat(Text("a"), mustOneOrMore(t, AnyDigit()))

	ok, err := p.HasMatch("xa12")
	if err != nil || !ok {
		t.Errorf("HasMatch = %v, %v", ok, err)
	}
	matches, err := p.Matches("a1 a22")
	if err != nil || len(matches) != 2 {
		t.Errorf("Matches = %v, %v", matches, err)
	}
	exact, err := p.IsExactMatch("a1")
	if err != nil || !exact {
		t.Errorf("IsExactMatch = %v, %v", exact, err)
	}

	ref, refErr := Backreference(3)
	if refErr != nil {
		t.Fatal(refErr)
	}
	if _, err := ref.Matches("x"); !errors.Is(err, ErrUndefinedGroupReference) {
		t.Errorf("Matches error = %v, want ErrUndefinedGroupReference", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	// The dot matches newlines (single-line option).
	m := compileConcat(t, Text("a"), Any(), Text("b"))
	if !m.HasMatch("a\nb") {
		t.Error("dot did not match a newline")
	}
}
