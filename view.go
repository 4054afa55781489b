// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package runefix

// Text pairs a string with a WidthPolicy so repeated operations need not
// restate the policy. It is a plain value carrying no other state; every
// method produces the same result as the corresponding two-argument call.
type Text struct {
	text   string
	policy WidthPolicy
}

func Bind(text string, policy WidthPolicy) Text {
	return Text{text: text, policy: policy}
}

func (self Text) String() string { return self.text }

func (self Text) Policy() WidthPolicy { return self.policy }

func (self Text) DisplayWidth() int { return self.policy.DisplayWidth(self.text) }

func (self Text) DisplayWidths() []int { return self.policy.DisplayWidths(self.text) }

func (self Text) GraphemeWidths() []GraphemeWidth { return self.policy.GraphemeWidths(self.text) }

func (self Text) Atoms() []string { return SplitIntoAtoms(self.text) }

func (self Text) Graphemes() []string { return SplitIntoGraphemes(self.text) }

func (self Text) TruncateByWidth(budget int) string {
	return self.policy.TruncateByWidth(self.text, budget)
}

func (self Text) SplitByWidth(budget int) []string {
	return self.policy.SplitByWidth(self.text, budget)
}
