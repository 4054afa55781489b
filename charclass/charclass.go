// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package charclass

import (
	"fmt"
)

var _ = fmt.Print

// Category is the semantic width class of a single Unicode scalar value.
// Every scalar value maps to exactly one Category, Default being the
// fallback for anything not covered by the embedded datasets.
type Category uint8

const (
	Default Category = iota
	EmojiBase
	EmojiJoinerComponent
	CJKUnified
	Kana
	HangulSyllable
	FullwidthVariant
	FullwidthPunctuation
	ZeroWidthMark
)

func (self Category) String() string {
	switch self {
	case Default:
		return "Default"
	case EmojiBase:
		return "EmojiBase"
	case EmojiJoinerComponent:
		return "EmojiJoinerComponent"
	case CJKUnified:
		return "CJKUnified"
	case Kana:
		return "Kana"
	case HangulSyllable:
		return "HangulSyllable"
	case FullwidthVariant:
		return "FullwidthVariant"
	case FullwidthPunctuation:
		return "FullwidthPunctuation"
	case ZeroWidthMark:
		return "ZeroWidthMark"
	}
	return fmt.Sprintf("Category(%d)", uint8(self))
}

const UNICODE_LIMIT = 0x110000

func ensure_char_in_range(value uint32) uint32 {
	// Branchless: if (value >= UNICODE_LIMIT) value = 0
	diff := int64(value) - UNICODE_LIMIT
	// The right shift gives all ones for negative diff and all zeros for positive diff
	mask := uint32(diff >> 63)
	return value & mask
}

// CategoryFor returns the width category of ch. It is total: scalar values
// outside the Unicode range are clamped to 0 and resolve to Default. The
// first call builds the classification table, which is immutable afterwards
// so concurrent lookups need no locking.
func CategoryFor(ch rune) Category {
	q := ensure_char_in_range(uint32(ch))
	return classification_table().category_for(q)
}

func IsZeroWidth(ch rune) bool {
	return CategoryFor(ch) == ZeroWidthMark
}
