// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package runefix

import (
	"fmt"
	"maps"

	"github.com/kovidgoyal/runefix/charclass"
)

var _ = fmt.Print

// ConfigurationError is returned when a WidthPolicy is constructed with an
// invalid width. It is never produced during width resolution.
type ConfigurationError struct {
	Field string
	Value int
}

func (self *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid width policy: %s is %d, widths must be non-negative", self.Field, self.Value)
}

// WidthPolicy maps width categories to column counts. Policies are
// immutable values: construct one with a factory or NewWidthPolicy and pass
// it around by value. Zero-width marks always resolve to 0 and the Default
// category always resolves to 1, independent of the policy.
type WidthPolicy struct {
	emoji, cjk, variant int
	overrides           map[rune]int
}

// TerminalPolicy treats emoji and all East Asian text as two cells wide,
// matching monospace terminal rendering.
func TerminalPolicy() WidthPolicy {
	return WidthPolicy{emoji: 2, cjk: 2, variant: 2}
}

// MarkdownPolicy treats emoji as a single cell, for Markdown tables and web
// text where emoji do not occupy two columns.
func MarkdownPolicy() WidthPolicy {
	return WidthPolicy{emoji: 1, cjk: 2, variant: 2}
}

// CompactPolicy treats everything as a single cell, for logs and
// space-constrained layouts.
func CompactPolicy() WidthPolicy {
	return WidthPolicy{emoji: 1, cjk: 1, variant: 1}
}

// NewWidthPolicy builds a policy with arbitrary per-category widths.
// Negative widths are rejected with a *ConfigurationError.
func NewWidthPolicy(emoji, cjk, variant int) (WidthPolicy, error) {
	for _, field := range []struct {
		name  string
		value int
	}{{"emoji", emoji}, {"cjk", cjk}, {"variant", variant}} {
		if field.value < 0 {
			return WidthPolicy{}, &ConfigurationError{Field: field.name, Value: field.value}
		}
	}
	return WidthPolicy{emoji: emoji, cjk: cjk, variant: variant}, nil
}

// NewWidthPolicyWithOverrides builds a policy that additionally forces an
// explicit width for individual characters. Overrides take precedence over
// category widths and are validated here, never at resolution time.
func NewWidthPolicyWithOverrides(emoji, cjk, variant int, overrides map[rune]int) (WidthPolicy, error) {
	ans, err := NewWidthPolicy(emoji, cjk, variant)
	if err != nil {
		return WidthPolicy{}, err
	}
	for ch, w := range overrides {
		if w < 0 {
			return WidthPolicy{}, &ConfigurationError{Field: fmt.Sprintf("override for U+%04X", ch), Value: w}
		}
	}
	if len(overrides) > 0 {
		ans.overrides = maps.Clone(overrides)
	}
	return ans, nil
}

// WithOverride returns a copy of the policy with one additional character
// override. The receiver is left unchanged.
func (self WidthPolicy) WithOverride(ch rune, width int) (WidthPolicy, error) {
	if width < 0 {
		return WidthPolicy{}, &ConfigurationError{Field: fmt.Sprintf("override for U+%04X", ch), Value: width}
	}
	ans := self
	ans.overrides = make(map[rune]int, len(self.overrides)+1)
	maps.Copy(ans.overrides, self.overrides)
	ans.overrides[ch] = width
	return ans, nil
}

func (self WidthPolicy) EmojiWidth() int   { return self.emoji }
func (self WidthPolicy) CJKWidth() int     { return self.cjk }
func (self WidthPolicy) VariantWidth() int { return self.variant }

func (self WidthPolicy) width_for(category charclass.Category) int {
	switch category {
	case charclass.ZeroWidthMark:
		return 0
	case charclass.EmojiBase, charclass.EmojiJoinerComponent:
		return self.emoji
	case charclass.CJKUnified, charclass.Kana, charclass.HangulSyllable:
		return self.cjk
	case charclass.FullwidthVariant, charclass.FullwidthPunctuation:
		return self.variant
	}
	return 1
}
