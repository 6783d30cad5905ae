// Package ranges implements the character-range interval algebra that backs
// the character-class set operations: canonicalization, union and
// subtraction over sets of inclusive rune ranges.
//
// Every exported function returns sets in canonical form: sorted by lower
// bound, with overlapping and adjacent ranges merged, so that no two ranges
// touch. Inputs need not be canonical.
package ranges

import "sort"

// Range is an inclusive range of runes. A single character is represented
// as a range with Lo == Hi.
type Range struct {
	Lo, Hi rune
}

// Single returns the range holding exactly one rune.
func Single(r rune) Range {
	return Range{Lo: r, Hi: r}
}

// Size returns the number of runes covered by the range.
func (r Range) Size() int {
	return int(r.Hi-r.Lo) + 1
}

// Normalize sorts the given ranges by lower bound and merges any ranges
// that overlap or are adjacent (e.g. 0-4 and 5-9 become 0-9). The input
// slice is not modified.
func Normalize(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := make([]Range, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Union returns the canonical union of the two range sets.
func Union(a, b []Range) []Range {
	merged := make([]Range, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return Normalize(merged)
}

// Subtract removes every rune covered by b from a and returns the canonical
// remainder. Subtracting a range from the middle of another splits it in
// two.
func Subtract(a, b []Range) []Range {
	a = Normalize(a)
	b = Normalize(b)

	var out []Range
	for _, r := range a {
		pieces := []Range{r}
		for _, cut := range b {
			var next []Range
			for _, p := range pieces {
				if cut.Hi < p.Lo || cut.Lo > p.Hi {
					next = append(next, p)
					continue
				}
				if cut.Lo > p.Lo {
					next = append(next, Range{Lo: p.Lo, Hi: cut.Lo - 1})
				}
				if cut.Hi < p.Hi {
					next = append(next, Range{Lo: cut.Hi + 1, Hi: p.Hi})
				}
			}
			pieces = next
			if len(pieces) == 0 {
				break
			}
		}
		out = append(out, pieces...)
	}
	return Normalize(out)
}

// Contains reports whether the canonical set rs covers the rune c.
func Contains(rs []Range, c rune) bool {
	i := sort.Search(len(rs), func(i int) bool { return rs[i].Hi >= c })
	return i < len(rs) && rs[i].Lo <= c
}

// Equal reports whether two canonical sets cover the same runes.
func Equal(a, b []Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
