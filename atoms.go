// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package runefix

import (
	"iter"
)

// IteratorOverAtoms yields the layout atoms of text, in order. Atoms are
// the units width operations are defined over: every scalar value is its
// own atom, so zero-width marks (joiners, variation selectors, combining
// marks) stay adjacent to their base instead of being merged into it, and
// emoji bases and CJK characters remain single-codepoint units. The
// concatenation of all atoms reconstructs text exactly.
//
// This is not UAX #29 segmentation, see IteratorOverGraphemes for that.
func IteratorOverAtoms(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start_pos := -1
		for pos := range text {
			if start_pos >= 0 && !yield(text[start_pos:pos]) {
				return
			}
			start_pos = pos
		}
		if start_pos >= 0 {
			yield(text[start_pos:])
		}
	}
}

func SplitIntoAtoms(text string) []string {
	ans := make([]string, 0, len(text))
	for atom := range IteratorOverAtoms(text) {
		ans = append(ans, atom)
	}
	return ans
}
