// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package charclass

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

//go:embed data/*.json
var dataset_files embed.FS

// dataset mirrors the on-disk shape of one category file: disjoint
// [lo, hi] ranges and explicit single codepoints, all as hex strings.
type dataset struct {
	Category   string      `json:"category"`
	Version    string      `json:"version"`
	Ranges     [][2]string `json:"ranges"`
	Codepoints []string    `json:"codepoints"`
}

var category_names = map[string]Category{
	"emoji_base":         EmojiBase,
	"emoji_joiners":      EmojiJoinerComponent,
	"cjk_unified":        CJKUnified,
	"japanese_kana":      Kana,
	"korean_syllables":   HangulSyllable,
	"fullwidth_variants": FullwidthVariant,
	"fullwidth_punct":    FullwidthPunctuation,
	"zero_width":         ZeroWidthMark,
}

type char_range struct {
	lo, hi   uint32
	category Category
}

type table struct {
	ranges []char_range
}

var classification_table = sync.OnceValue(build_table)

func parse_codepoint(file, text string) uint32 {
	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil || v >= UNICODE_LIMIT {
		panic(fmt.Sprintf("charclass: %s contains invalid codepoint %q", file, text))
	}
	return uint32(v)
}

func build_table() *table {
	entries, err := dataset_files.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("charclass: failed to list embedded datasets: %s", err))
	}
	ans := &table{ranges: make([]char_range, 0, 256)}
	for _, entry := range entries {
		name := "data/" + entry.Name()
		raw, err := dataset_files.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("charclass: failed to read embedded dataset %s: %s", name, err))
		}
		var d dataset
		if err := json.Unmarshal(raw, &d); err != nil {
			panic(fmt.Sprintf("charclass: failed to parse %s: %s", name, err))
		}
		category, found := category_names[d.Category]
		if !found {
			panic(fmt.Sprintf("charclass: %s declares unknown category %q", name, d.Category))
		}
		if d.Version != TableVersion() {
			panic(fmt.Sprintf("charclass: %s carries dataset version %s, library expects %s", name, d.Version, TableVersion()))
		}
		for _, r := range d.Ranges {
			lo, hi := parse_codepoint(name, r[0]), parse_codepoint(name, r[1])
			if lo > hi {
				panic(fmt.Sprintf("charclass: %s contains inverted range %s-%s", name, r[0], r[1]))
			}
			ans.ranges = append(ans.ranges, char_range{lo: lo, hi: hi, category: category})
		}
		for _, c := range d.Codepoints {
			q := parse_codepoint(name, c)
			ans.ranges = append(ans.ranges, char_range{lo: q, hi: q, category: category})
		}
	}
	sort.Slice(ans.ranges, func(i, j int) bool { return ans.ranges[i].lo < ans.ranges[j].lo })
	for i := 1; i < len(ans.ranges); i++ {
		if ans.ranges[i].lo <= ans.ranges[i-1].hi {
			panic(fmt.Sprintf("charclass: datasets overlap at U+%04X (%s and %s)",
				ans.ranges[i].lo, ans.ranges[i-1].category, ans.ranges[i].category))
		}
	}
	return ans
}

func (self *table) category_for(q uint32) Category {
	idx := sort.Search(len(self.ranges), func(i int) bool { return self.ranges[i].hi >= q })
	if idx < len(self.ranges) && self.ranges[idx].lo <= q {
		return self.ranges[idx].category
	}
	return Default
}
