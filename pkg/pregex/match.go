package pregex

import (
	"fmt"
	"iter"
	"os"

	"github.com/dlclark/regexp2"
)

// matchOptions are the options every pattern compiles with: ^/$ match at
// line boundaries and the dot matches newlines.
const matchOptions = regexp2.Multiline | regexp2.Singleline

// Matcher is a pattern compiled against the matching engine, ready to run
// against input text. All positions it reports are rune offsets.
type Matcher struct {
	re    *regexp2.Regexp
	exact *regexp2.Regexp
	caps  []string
}

// Submatch is the text captured by one capturing group within a match. A
// declared group that did not take part in the match is reported with
// Matched false and offsets -1, never omitted.
type Submatch struct {
	Value      string
	Start, End int
	Matched    bool
}

// MatchPos is a whole match together with its position in the input.
type MatchPos struct {
	Value      string
	Start, End int
}

// Compile validates the pattern's pending backreferences and compiles it
// against the matching engine. A reference that no capturing group to its
// left satisfies fails with ErrUndefinedGroupReference; a pattern the
// engine rejects (only possible for Raw input) fails with *CompileError.
func (p *Pregex) Compile() (*Matcher, error) {
	if len(p.refs) > 0 {
		ref := p.refs[0]
		if ref.name != "" {
			return nil, fmt.Errorf("reference \\k<%s> to a group that is never defined: %w",
				ref.name, ErrUndefinedGroupReference)
		}
		return nil, fmt.Errorf("reference \\%d with only %d groups defined before it: %w",
			ref.index, ref.index-ref.need, ErrUndefinedGroupReference)
	}
	re, err := regexp2.Compile(p.pattern, matchOptions)
	if err != nil {
		return nil, &CompileError{Pattern: p.pattern, Err: err}
	}
	exact, err := regexp2.Compile(`\A(?:`+p.pattern+`)\z`, matchOptions)
	if err != nil {
		return nil, &CompileError{Pattern: p.pattern, Err: err}
	}
	caps := make([]string, len(p.caps))
	copy(caps, p.caps)
	return &Matcher{re: re, exact: exact, caps: caps}, nil
}

// Pattern returns the regular-expression text the matcher was compiled
// from.
func (m *Matcher) Pattern() string {
	return m.re.String()
}

// GroupCount returns the number of capturing groups in the pattern.
func (m *Matcher) GroupCount() int {
	return len(m.caps)
}

// iterate yields every engine match in the source, left to right. Engine
// errors cannot occur here since no match timeout is configured.
func (m *Matcher) iterate(source string) iter.Seq[*regexp2.Match] {
	return func(yield func(*regexp2.Match) bool) {
		match, err := m.re.FindStringMatch(source)
		for err == nil && match != nil {
			if !yield(match) {
				return
			}
			match, err = m.re.FindNextMatch(match)
		}
	}
}

// HasMatch reports whether the pattern matches anywhere in the source.
func (m *Matcher) HasMatch(source string) bool {
	ok, _ := m.re.MatchString(source)
	return ok
}

// IsExactMatch reports whether the pattern matches the source in its
// entirety.
func (m *Matcher) IsExactMatch(source string) bool {
	ok, _ := m.exact.MatchString(source)
	return ok
}

// Matches returns the text of every match in the source, left to right.
func (m *Matcher) Matches(source string) []string {
	var out []string
	for match := range m.iterate(source) {
		out = append(out, match.String())
	}
	return out
}

// MatchesWithPos returns every match in the source along with its rune
// offsets.
func (m *Matcher) MatchesWithPos(source string) []MatchPos {
	var out []MatchPos
	for match := range m.iterate(source) {
		out = append(out, MatchPos{
			Value: match.String(),
			Start: match.Index,
			End:   match.Index + match.Length,
		})
	}
	return out
}

// Scan returns a lazy iterator over the text of every match in the source.
// The iterator is restartable: ranging over it again scans the source from
// the beginning.
func (m *Matcher) Scan(source string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for match := range m.iterate(source) {
			if !yield(match.String()) {
				return
			}
		}
	}
}

// submatch converts an engine group into a Submatch, using the group's last
// capture. A group with no captures yields the absent marker.
func submatch(g *regexp2.Group) Submatch {
	if g == nil || len(g.Captures) == 0 {
		return Submatch{Start: -1, End: -1}
	}
	c := g.Captures[len(g.Captures)-1]
	return Submatch{
		Value:   c.String(),
		Start:   c.Index,
		End:     c.Index + c.Length,
		Matched: true,
	}
}

// group finds the engine group for the capturing group at construction
// index i. The engine numbers unnamed groups first and named groups after
// them, so named groups are resolved by name.
func (m *Matcher) group(match *regexp2.Match, i int) *regexp2.Group {
	if name := m.caps[i]; name != "" {
		return match.GroupByName(name)
	}
	number := 0
	for _, name := range m.caps[:i+1] {
		if name == "" {
			number++
		}
	}
	return match.GroupByNumber(number)
}

// Captures returns, for every match in the source, one Submatch per
// capturing group in construction order. The slices all have GroupCount
// elements; groups that did not participate carry the absent marker.
func (m *Matcher) Captures(source string) [][]Submatch {
	var out [][]Submatch
	for match := range m.iterate(source) {
		subs := make([]Submatch, len(m.caps))
		for i := range m.caps {
			subs[i] = submatch(m.group(match, i))
		}
		out = append(out, subs)
	}
	return out
}

// NamedCaptures returns, for every match in the source, the submatches of
// the pattern's named groups keyed by group name.
func (m *Matcher) NamedCaptures(source string) []map[string]Submatch {
	var out []map[string]Submatch
	for match := range m.iterate(source) {
		subs := make(map[string]Submatch)
		for _, name := range m.caps {
			if name != "" {
				subs[name] = submatch(match.GroupByName(name))
			}
		}
		out = append(out, subs)
	}
	return out
}

// Replace substitutes repl for the first count matches in the source, or
// for every match if count is zero. The replacement may refer to capturing
// groups as $1 or ${name}.
func (m *Matcher) Replace(source, repl string, count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("replacement count %d: %w", count, ErrInvalidArgumentValue)
	}
	if count == 0 {
		count = -1
	}
	out, err := m.re.Replace(source, repl, 0, count)
	if err != nil {
		return "", fmt.Errorf("replace: %w", err)
	}
	return out, nil
}

// Split cuts the source around every match and returns the pieces in
// between. Zero-width matches do not split.
func (m *Matcher) Split(source string) []string {
	rs := []rune(source)
	var out []string
	prev := 0
	for match := range m.iterate(source) {
		if match.Length == 0 {
			continue
		}
		out = append(out, string(rs[prev:match.Index]))
		prev = match.Index + match.Length
	}
	return append(out, string(rs[prev:]))
}

// MatchesFile runs Matches over the contents of the file at path.
func (m *Matcher) MatchesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}
	return m.Matches(string(data)), nil
}

// CapturesFile runs Captures over the contents of the file at path.
func (m *Matcher) CapturesFile(path string) ([][]Submatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}
	return m.Captures(string(data)), nil
}

// HasMatch compiles the pattern and reports whether it matches anywhere in
// the source. Every call compiles and scans afresh; hold on to a Matcher
// when matching repeatedly.
func (p *Pregex) HasMatch(source string) (bool, error) {
	m, err := p.Compile()
	if err != nil {
		return false, err
	}
	return m.HasMatch(source), nil
}

// IsExactMatch compiles the pattern and reports whether it matches the
// source in its entirety.
func (p *Pregex) IsExactMatch(source string) (bool, error) {
	m, err := p.Compile()
	if err != nil {
		return false, err
	}
	return m.IsExactMatch(source), nil
}

// Matches compiles the pattern and returns the text of every match in the
// source.
func (p *Pregex) Matches(source string) ([]string, error) {
	m, err := p.Compile()
	if err != nil {
		return nil, err
	}
	return m.Matches(source), nil
}

// Captures compiles the pattern and returns the captured submatches of
// every match in the source.
func (p *Pregex) Captures(source string) ([][]Submatch, error) {
	m, err := p.Compile()
	if err != nil {
		return nil, err
	}
	return m.Captures(source), nil
}
