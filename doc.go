// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

// Package runefix computes the rendered column width of Unicode text on
// monospace display surfaces such as terminals, Markdown tables and TUI
// layouts.
//
// Width resolution is driven by a per-codepoint classifier backed by
// embedded Unicode derived datasets (see the charclass subpackage) and a
// WidthPolicy mapping width categories to column counts. Three built-in
// policies are provided: TerminalPolicy (emoji and East Asian text take two
// cells), MarkdownPolicy (emoji take one cell) and CompactPolicy
// (everything takes one cell).
//
// Two segmentations are available: SplitIntoGraphemes yields UAX #29
// extended grapheme clusters, while SplitIntoAtoms yields the layout units
// the width operations are defined over. On top of those the package offers
// DisplayWidth, TruncateByWidth and SplitByWidth, plus Bind for a
// policy-bound view of a string.
//
// All operations are pure and safe for concurrent use.
package runefix
