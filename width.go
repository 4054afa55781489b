// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package runefix

import (
	"github.com/kovidgoyal/runefix/charclass"
)

// RuneWidth resolves the column width of a single character under the
// policy: an explicit override wins, otherwise the character's category
// width applies. Never negative, never fails.
func (self WidthPolicy) RuneWidth(ch rune) int {
	if w, found := self.overrides[ch]; found {
		return w
	}
	return self.width_for(charclass.CategoryFor(ch))
}

// AtomWidth resolves the width of one layout unit. Atoms produced by this
// package are single scalar values; for a multi-codepoint unit (a caller
// may hand in a grapheme cluster) the per-codepoint widths are summed, with
// overrides applying per codepoint.
func (self WidthPolicy) AtomWidth(unit string) int {
	ans := 0
	for _, ch := range unit {
		ans += self.RuneWidth(ch)
	}
	return ans
}

// DisplayWidth returns the total column width of text, the sum of the
// widths of its atoms. Empty text has width 0.
func (self WidthPolicy) DisplayWidth(text string) int {
	ans := 0
	for _, ch := range text {
		ans += self.RuneWidth(ch)
	}
	return ans
}

// DisplayWidths returns the width of each atom of text, in order.
func (self WidthPolicy) DisplayWidths(text string) []int {
	ans := make([]int, 0, len(text))
	for _, ch := range text {
		ans = append(ans, self.RuneWidth(ch))
	}
	return ans
}

type GraphemeWidth struct {
	Grapheme string
	Width    int
}

// GraphemeWidths pairs each UAX #29 grapheme cluster of text with its
// width, the sum over the atoms the cluster contains.
func (self WidthPolicy) GraphemeWidths(text string) []GraphemeWidth {
	ans := make([]GraphemeWidth, 0, len(text)/2)
	for g := range IteratorOverGraphemes(text) {
		ans = append(ans, GraphemeWidth{Grapheme: g, Width: self.AtomWidth(g)})
	}
	return ans
}

// WidthIterator accumulates the width of text fed to it one rune at a
// time, for callers that stream text instead of holding it in one string.
type WidthIterator struct {
	policy WidthPolicy
	total  int
}

func NewWidthIterator(policy WidthPolicy) *WidthIterator {
	return &WidthIterator{policy: policy}
}

// Step adds ch to the running total and returns the width of ch.
func (self *WidthIterator) Step(ch rune) int {
	w := self.policy.RuneWidth(ch)
	self.total += w
	return w
}

func (self *WidthIterator) Total() int { return self.total }

func (self *WidthIterator) Reset() { self.total = 0 }

// Package level forms of the width operations, using TerminalPolicy.

func RuneWidth(ch rune) int { return TerminalPolicy().RuneWidth(ch) }

func DisplayWidth(text string) int { return TerminalPolicy().DisplayWidth(text) }

func DisplayWidths(text string) []int { return TerminalPolicy().DisplayWidths(text) }

func GraphemeWidths(text string) []GraphemeWidth { return TerminalPolicy().GraphemeWidths(text) }
