package glyphname

import (
	"strings"
	"unicode/utf8"

	"github.com/glyphpath/glyphpath/internal/escape"
	"github.com/glyphpath/glyphpath/internal/platform"
)

// ToFilename encodes a native path as a reversible string that is safe to use
// as a single filename component. A recognized well-known directory prefix is
// rewritten to a platform marker and root icon; everything else is escaped
// rune by rune. The only possible failure is input that is not valid UTF-8.
func ToFilename(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", &InvalidTextError{Raw: []byte(path)}
	}
	return encode(path), nil
}

// ToFilenameBytes is ToFilename for callers holding raw path bytes, such as
// those read from OS APIs that do not guarantee text.
func ToFilenameBytes(path []byte) (string, error) {
	if !utf8.Valid(path) {
		raw := make([]byte, len(path))
		copy(raw, path)
		return "", &InvalidTextError{Raw: raw}
	}
	return encode(string(path)), nil
}

func encode(path string) string {
	p := platform.Detect(path)
	if p == nil {
		return escape.Escape(path)
	}

	root, name, rest := consumePrefix(p, path)

	var b strings.Builder
	b.WriteRune(p.Marker())
	b.WriteRune(root.Icon())
	b.WriteString(escape.Escape(name))
	b.WriteString(escape.Escape(rest))
	return b.String()
}

// consumePrefix consumes the well-known directory prefix that Detect already
// sniffed. For a home match it additionally tries each known subdirectory,
// first match wins; when none matches only the home prefix is consumed.
func consumePrefix(p platform.Platform, path string) (platform.Root, string, string) {
	if user, rest, ok := p.MatchHome(path); ok {
		for _, root := range platform.Subdirs() {
			if tail, ok := cutSubdir(rest, p.Separator(), p.SubdirName(root)); ok {
				return root, user, tail
			}
		}
		return platform.Home, user, rest
	}

	// Detect matched, so this cannot fail.
	volume, rest, _ := p.MatchDrive(path)
	return platform.Drive, volume, rest
}

// cutSubdir consumes a leading separator plus the subdirectory name, requiring
// the name to be followed by another separator or end of input.
func cutSubdir(s string, sep rune, name string) (string, bool) {
	tail, found := strings.CutPrefix(s, string(sep)+name)
	if !found {
		return "", false
	}
	if tail != "" {
		if r, _ := utf8.DecodeRuneInString(tail); r != sep {
			return "", false
		}
	}
	return tail, true
}
