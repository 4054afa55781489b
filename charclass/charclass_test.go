package charclass

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCategoryFor(t *testing.T) {
	categories := func(text string, expected ...Category) {
		t.Helper()
		actual := make([]Category, 0, len(expected))
		for _, ch := range text {
			actual = append(actual, CategoryFor(ch))
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Wrong categories for %#v\n%s", text, diff)
		}
	}

	categories("a1 ~", Default, Default, Default, Default)
	categories("你好", CJKUnified, CJKUnified)
	categories("\U00020000", CJKUnified)
	categories("かコ", Kana, Kana)
	categories("한글", HangulSyllable, HangulSyllable)
	categories("Ａ５ｚ", FullwidthVariant, FullwidthVariant, FullwidthVariant)
	categories("。、！　", FullwidthPunctuation, FullwidthPunctuation, FullwidthPunctuation, FullwidthPunctuation)
	categories("😂👇🌷", EmojiBase, EmojiBase, EmojiBase)
	categories("❤", EmojiBase)
	categories("\U0001F3FB", EmojiJoinerComponent)
	categories("\U000E0067", EmojiJoinerComponent)
	categories("‍️̀", ZeroWidthMark, ZeroWidthMark, ZeroWidthMark)
	categories("\x00\x1f\x7f", ZeroWidthMark, ZeroWidthMark, ZeroWidthMark)
	categories("゙", ZeroWidthMark)
	// halfwidth katakana is narrow and deliberately not in the kana dataset
	categories("ｱ", Default)

	if c := CategoryFor(rune(0x110000)); c != ZeroWidthMark {
		// clamped to U+0000, which is a control
		t.Fatalf("Out of range scalar classified as %s", c)
	}
	if c := CategoryFor(-1); c != ZeroWidthMark {
		t.Fatalf("Negative scalar classified as %s", c)
	}

	if !IsZeroWidth('‍') || IsZeroWidth('a') {
		t.Fatal("IsZeroWidth is wrong")
	}
}

func TestTableIsSortedAndDisjoint(t *testing.T) {
	tbl := classification_table()
	if len(tbl.ranges) == 0 {
		t.Fatal("classification table is empty")
	}
	for i := 1; i < len(tbl.ranges); i++ {
		prev, cur := tbl.ranges[i-1], tbl.ranges[i]
		if cur.lo <= prev.hi {
			t.Fatalf("ranges %04x-%04x and %04x-%04x overlap or are unsorted", prev.lo, prev.hi, cur.lo, cur.hi)
		}
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, ch := range "a你か한Ａ。😂‍" {
				CategoryFor(ch)
			}
		}()
	}
	wg.Wait()
	if CategoryFor('你') != CJKUnified {
		t.Fatal("classification changed after concurrent first use")
	}
}

func TestTableVersion(t *testing.T) {
	if v := TableVersion(); v != "16.0.0" {
		t.Fatalf("unexpected dataset version: %s", v)
	}
	if !strings.HasPrefix(TableVersion(), "16.") {
		t.Fatal("major version mismatch")
	}
}
