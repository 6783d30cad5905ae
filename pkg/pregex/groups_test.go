package pregex

import (
	"errors"
	"testing"
)

func TestCapture(t *testing.T) {
	tests := []struct {
		name       string
		got        *Pregex
		want       string
		wantGroups int
	}{
		{"wraps a chain", Capture(Text("ab")), "(ab)", 1},
		{"capture of capture is a no-op", Capture(Capture(Text("a"))), "(a)", 1},
		{"converts a non-capturing group", Capture(Group(Text("ab"))), "(ab)", 1},
		{"keeps a named group", Capture(mustCaptureAs(t, Text("a"), "x")), "(?<x>a)", 1},
		{"wraps an alternation", Capture(Either(Text("a"), Text("b"))), "(a|b)", 1},
		{"nested captures count", Capture(Concat(Capture(Text("a")), Text("b"))), "((a)b)", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Regex() != tt.want {
				t.Errorf("pattern = %q, want %q", tt.got.Regex(), tt.want)
			}
			if tt.got.GroupCount() != tt.wantGroups {
				t.Errorf("GroupCount = %d, want %d", tt.got.GroupCount(), tt.wantGroups)
			}
		})
	}
}

func mustCaptureAs(t *testing.T, pre Pattern, name string) *Pregex {
	t.Helper()
	p, err := CaptureAs(pre, name)
	if err != nil {
		t.Fatalf("CaptureAs(%q) error: %v", name, err)
	}
	return p
}

func TestCaptureAs(t *testing.T) {
	t.Run("wraps and records the name", func(t *testing.T) {
		p := mustCaptureAs(t, Text("ab"), "word")
		if p.Regex() != "(?<word>ab)" {
			t.Errorf("pattern = %q, want %q", p.Regex(), "(?<word>ab)")
		}
		names := p.GroupNames()
		if len(names) != 1 || names[0] != "word" {
			t.Errorf("GroupNames = %v, want [word]", names)
		}
	})

	t.Run("names an unnamed capture in place", func(t *testing.T) {
		p := mustCaptureAs(t, Capture(Text("a")), "x")
		if p.Regex() != "(?<x>a)" || p.GroupCount() != 1 {
			t.Errorf("pattern = %q (groups %d), want (?<x>a) with 1 group", p.Regex(), p.GroupCount())
		}
	})

	t.Run("renames a named capture", func(t *testing.T) {
		p := mustCaptureAs(t, mustCaptureAs(t, Text("a"), "x"), "y")
		if p.Regex() != "(?<y>a)" || p.GroupCount() != 1 {
			t.Errorf("pattern = %q (groups %d), want (?<y>a) with 1 group", p.Regex(), p.GroupCount())
		}
	})

	t.Run("converts a non-capturing group", func(t *testing.T) {
		p := mustCaptureAs(t, Group(Text("ab")), "x")
		if p.Regex() != "(?<x>ab)" || p.GroupCount() != 1 {
			t.Errorf("pattern = %q (groups %d), want (?<x>ab) with 1 group", p.Regex(), p.GroupCount())
		}
	})

	t.Run("rejects bad names", func(t *testing.T) {
		for _, name := range []string{"", "1x", "a-b", "a b", "ümlaut"} {
			if _, err := CaptureAs(Text("a"), name); !errors.Is(err, ErrInvalidGroupName) {
				t.Errorf("CaptureAs(%q) error = %v, want ErrInvalidGroupName", name, err)
			}
		}
	})
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name       string
		got        *Pregex
		want       string
		wantGroups int
	}{
		{"wraps a chain", Group(Text("ab")), "(?:ab)", 0},
		{"group of group is a no-op", Group(Group(Text("a"))), "(?:a)", 0},
		{"discards a capture", Group(Capture(Text("ab"))), "(?:ab)", 0},
		{"discards a named capture", Group(mustCaptureAsGroup(Text("a"), "x")), "(?:a)", 0},
		{"keeps inner captures", Group(Concat(Capture(Text("a")), Text("b"))), "(?:(a)b)", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Regex() != tt.want {
				t.Errorf("pattern = %q, want %q", tt.got.Regex(), tt.want)
			}
			if tt.got.GroupCount() != tt.wantGroups {
				t.Errorf("GroupCount = %d, want %d", tt.got.GroupCount(), tt.wantGroups)
			}
		})
	}
}

func mustCaptureAsGroup(pre Pattern, name string) *Pregex {
	p, err := CaptureAs(pre, name)
	if err != nil {
		panic(err)
	}
	return p
}

func TestGroupNumbering(t *testing.T) {
	// Group indices follow the position of the opening parenthesis in the
	// final expression, left to right.
	p := Concat(
		Capture(Text("a")),
		Group(Concat(Capture(Text("b")), mustCaptureAsGroup(Text("c"), "third"))),
	)
	if p.Regex() != "(a)(?:(b)(?<third>c))" {
		t.Fatalf("pattern = %q", p.Regex())
	}
	groups := p.Groups()
	want := []string{"", "", "third"}
	if len(groups) != len(want) {
		t.Fatalf("Groups = %v, want %v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("Groups[%d] = %q, want %q", i, groups[i], want[i])
		}
	}
}

func TestBackreference(t *testing.T) {
	t.Run("resolves against a group to its left", func(t *testing.T) {
		ref, err := Backreference(1)
		if err != nil {
			t.Fatal(err)
		}
		p := Concat(Capture(mustOneOrMore(t, AnyWordChar())), Text(" "), ref)
		if p.Regex() != `([0-9A-Z_a-z]+) \1` {
			t.Fatalf("pattern = %q", p.Regex())
		}
		m, err := p.Compile()
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		got := m.Matches("hey hey you you me no")
		want := []string{"hey hey", "you you"}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("Matches = %v, want %v", got, want)
		}
	})

	t.Run("undefined index fails at compile", func(t *testing.T) {
		ref, err := Backreference(2)
		if err != nil {
			t.Fatal(err)
		}
		p := Concat(Capture(Text("a")), ref)
		if _, err := p.Compile(); !errors.Is(err, ErrUndefinedGroupReference) {
			t.Errorf("Compile error = %v, want ErrUndefinedGroupReference", err)
		}
	})

	t.Run("index out of domain", func(t *testing.T) {
		if _, err := Backreference(0); !errors.Is(err, ErrInvalidArgumentValue) {
			t.Errorf("Backreference(0) error = %v, want ErrInvalidArgumentValue", err)
		}
		if _, err := Backreference(100); !errors.Is(err, ErrInvalidArgumentValue) {
			t.Errorf("Backreference(100) error = %v, want ErrInvalidArgumentValue", err)
		}
	})
}

func mustOneOrMore(t *testing.T, pre Pattern) *Pregex {
	t.Helper()
	p, err := OneOrMore(pre)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNamedBackreference(t *testing.T) {
	t.Run("resolves against the named group", func(t *testing.T) {
		ref, err := NamedBackreference("w")
		if err != nil {
			t.Fatal(err)
		}
		p := Concat(mustCaptureAsGroup(mustOneOrMore(t, AnyLowercaseLetter()), "w"), Text("-"), ref)
		if p.Regex() != `(?<w>[a-z]+)-\k<w>` {
			t.Fatalf("pattern = %q", p.Regex())
		}
		m, err := p.Compile()
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		if !m.HasMatch("ab-ab") || m.HasMatch("ab-cd") {
			t.Error("named backreference did not enforce equality")
		}
	})

	t.Run("undefined name fails at compile", func(t *testing.T) {
		ref, err := NamedBackreference("nope")
		if err != nil {
			t.Fatal(err)
		}
		p := Concat(Capture(Text("a")), ref)
		if _, err := p.Compile(); !errors.Is(err, ErrUndefinedGroupReference) {
			t.Errorf("Compile error = %v, want ErrUndefinedGroupReference", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		if _, err := NamedBackreference("9lives"); !errors.Is(err, ErrInvalidGroupName) {
			t.Errorf("NamedBackreference error = %v, want ErrInvalidGroupName", err)
		}
	})
}

func TestConditional(t *testing.T) {
	opt, err := Optional(mustCaptureAsGroup(Text("a"), "x"))
	if err != nil {
		t.Fatal(err)
	}
	cond, err := Conditional("x", Text("b"), Text("c"))
	if err != nil {
		t.Fatal(err)
	}
	p := Concat(opt, cond)
	if p.Regex() != "(?<x>a)?(?(x)b|c)" {
		t.Fatalf("pattern = %q", p.Regex())
	}
	m, err := p.Compile()
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	for input, want := range map[string]bool{"ab": true, "c": true, "ac": false, "b": false} {
		if got := m.IsExactMatch(input); got != want {
			t.Errorf("IsExactMatch(%q) = %v, want %v", input, got, want)
		}
	}

	t.Run("dangling condition fails at compile", func(t *testing.T) {
		cond, err := Conditional("ghost", Text("b"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cond.Compile(); !errors.Is(err, ErrUndefinedGroupReference) {
			t.Errorf("Compile error = %v, want ErrUndefinedGroupReference", err)
		}
	})

	t.Run("rejects empty branch", func(t *testing.T) {
		if _, err := Conditional("x", Empty()); !errors.Is(err, ErrInvalidArgumentValue) {
			t.Errorf("Conditional(empty) error = %v, want ErrInvalidArgumentValue", err)
		}
	})
}
