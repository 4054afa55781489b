// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package runefix

// TruncateByWidth returns the longest prefix of text, aligned on atom
// boundaries, whose total width does not exceed budget. An atom is never
// split, so if the first atom is already wider than budget the result is
// empty. Trailing zero-width atoms that do not change the total are kept.
func (self WidthPolicy) TruncateByWidth(text string, budget int) string {
	if budget < 1 {
		return text[:0]
	}
	total, end := 0, 0
	for atom := range IteratorOverAtoms(text) {
		w := self.AtomWidth(atom)
		if total+w > budget {
			break
		}
		total += w
		end += len(atom)
	}
	return text[:end]
}

// SplitByWidth greedily wraps text into segments of width at most budget,
// never splitting an atom. A single atom wider than budget is emitted alone
// in its own segment, the one case where a segment may exceed the budget.
// The concatenation of the segments equals text.
func (self WidthPolicy) SplitByWidth(text string, budget int) []string {
	var ans []string
	seg_start, seg_width, pos := 0, 0, 0
	for atom := range IteratorOverAtoms(text) {
		w := self.AtomWidth(atom)
		if seg_width+w > budget && pos > seg_start {
			ans = append(ans, text[seg_start:pos])
			seg_start, seg_width = pos, 0
		}
		pos += len(atom)
		seg_width += w
	}
	if pos > seg_start {
		ans = append(ans, text[seg_start:pos])
	}
	return ans
}

func TruncateByWidth(text string, budget int) string {
	return TerminalPolicy().TruncateByWidth(text, budget)
}

func SplitByWidth(text string, budget int) []string {
	return TerminalPolicy().SplitByWidth(text, budget)
}
