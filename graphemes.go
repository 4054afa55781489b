// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package runefix

import (
	"iter"

	"github.com/rivo/uniseg"
)

// IteratorOverGraphemes yields the UAX #29 extended grapheme clusters of
// text, in order. Boundary detection is delegated to the uniseg package;
// the yielded segments are contiguous, non-overlapping and concatenate back
// to text.
func IteratorOverGraphemes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}

func SplitIntoGraphemes(text string) []string {
	ans := make([]string, 0, len(text))
	for g := range IteratorOverGraphemes(text) {
		ans = append(ans, g)
	}
	return ans
}
