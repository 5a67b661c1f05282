package escape

import "strings"

// The two tables below are index-aligned: targets[i] is replaced by outputs[i].
// NUL maps to the ideographic number zero, the filesystem-reserved set maps to
// fullwidth variants, and the three platform marker icons map to lookalike
// icons so a marker can never appear unescaped in escaped text.
var (
	targets = []rune{'\x00', '\\', '/', ':', '*', '?', '"', '<', '>', '|', '🍎', '🐧', '💠'}
	outputs = []rune{'〇', '＼', '／', '：', '＊', '？', '＂', '＜', '＞', '｜', '🍏', '🐤', '🚪'}
)

// escaping maps a rune to its replacement; unescaping maps a 1- or 2-rune
// sequence back to the original rune. Both are built once at init and never
// mutated, so concurrent readers need no locking.
var (
	escaping   map[rune]string
	unescaping map[string]rune
)

func init() {
	if len(targets) != len(outputs) {
		panic("escape: target and output tables differ in length")
	}

	escaping = make(map[rune]string, 2*len(targets))
	unescaping = make(map[string]rune, 2*len(targets))

	for i, target := range targets {
		out := outputs[i]
		if _, dup := unescaping[string(out)]; dup {
			panic("escape: duplicate output rune " + string(out))
		}
		escaping[target] = string(out)
		unescaping[string(out)] = target
	}

	// Every output rune self-escapes by doubling, so a literal occurrence in
	// input text stays distinguishable from an intentional escape.
	for _, out := range outputs {
		doubled := string([]rune{out, out})
		escaping[out] = doubled
		unescaping[doubled] = out
	}
}

// Escape replaces every reserved rune in s with its substitute and doubles
// every rune that belongs to the output alphabet. It never fails; the result
// is never shorter than the input.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if out, ok := escaping[r]; ok {
			b.WriteString(out)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape reverses Escape. The scan is greedy: at each position a 2-rune
// window is tried against the table first, then a single rune. Unknown runes
// pass through unchanged, so the function is total.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r, width := decodeAt(rs, i)
		b.WriteRune(r)
		i += width
	}
	return b.String()
}

// UnescapeComponent decodes like Unescape but stops, without consuming, at the
// first step that yields the bare separator rune. A self-escaped (doubled)
// occurrence decodes to an output-alphabet rune, never to sep, so separators
// that were part of an original name are still consumed. It returns the
// decoded component and the unconsumed remainder.
func UnescapeComponent(s string, sep rune) (component, rest string) {
	var b strings.Builder
	rs := []rune(s)
	i := 0
	for i < len(rs) {
		r, width := decodeAt(rs, i)
		if r == sep {
			break
		}
		b.WriteRune(r)
		i += width
	}
	return b.String(), string(rs[i:])
}

// decodeAt decodes one escape step at rs[i], returning the original rune and
// how many input runes it consumed.
func decodeAt(rs []rune, i int) (rune, int) {
	if i+1 < len(rs) {
		if r, ok := unescaping[string(rs[i:i+2])]; ok {
			return r, 2
		}
	}
	if r, ok := unescaping[string(rs[i])]; ok {
		return r, 1
	}
	return rs[i], 1
}

// Pair is one entry of the escape table.
type Pair struct {
	Target  rune
	Escaped rune
}

// Pairs returns the escape table entries in definition order.
// The returned slice is a copy; mutating it does not affect the table.
func Pairs() []Pair {
	pairs := make([]Pair, len(targets))
	for i := range targets {
		pairs[i] = Pair{Target: targets[i], Escaped: outputs[i]}
	}
	return pairs
}
