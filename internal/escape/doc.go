// Package escape implements the reversible character substitution used by
// encoded filenames.
//
// Reserved runes (the NUL byte, the characters \/:*?"<>| that filesystems
// refuse in names, and the three platform marker icons) are replaced by
// visually similar Unicode runes with an explicit East Asian width. Every rune
// the table can emit self-escapes by doubling, which keeps the mapping
// bijective: a doubled occurrence always means "literal output rune", a single
// occurrence always means "escaped target rune".
//
// The tables are built once at package init and never mutated, so all
// functions are safe for concurrent use.
package escape
