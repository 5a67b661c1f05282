package escape

import (
	"testing"

	"golang.org/x/text/width"
)

// Every rune the table can emit must have an explicit East Asian width, so a
// doubled occurrence in encoded output renders distinctly from a single one
// and is never confused with surrounding text.
func TestOutputsHaveExplicitWidth(t *testing.T) {
	for _, out := range outputs {
		assertExplicitWidth(t, out)
	}
}

func assertExplicitWidth(t *testing.T, r rune) {
	t.Helper()
	switch kind := width.LookupRune(r).Kind(); kind {
	case width.EastAsianWide, width.EastAsianNarrow, width.EastAsianFullwidth, width.EastAsianHalfwidth:
	default:
		t.Errorf("rune %q has ambiguous width %v", r, kind)
	}
}
