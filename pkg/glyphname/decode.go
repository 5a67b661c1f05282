package glyphname

import (
	"unicode/utf8"

	"github.com/glyphpath/glyphpath/internal/escape"
	"github.com/glyphpath/glyphpath/internal/platform"
)

// ToPath reconstructs the original native path from an encoded filename.
// A leading platform marker dispatches to that platform's prefix grammar; a
// marker followed by no recognized root form is a hard error. Input without a
// marker is plain escaped text and is simply unescaped.
func ToPath(filename string) (string, error) {
	if !utf8.ValidString(filename) {
		return "", &InvalidTextError{Raw: []byte(filename)}
	}
	return decode(filename)
}

// ToPathBytes is ToPath for callers holding raw filename bytes.
func ToPathBytes(filename []byte) (string, error) {
	if !utf8.Valid(filename) {
		raw := make([]byte, len(filename))
		copy(raw, filename)
		return "", &InvalidTextError{Raw: raw}
	}
	return decode(string(filename))
}

func decode(filename string) (string, error) {
	marker, size := utf8.DecodeRuneInString(filename)
	p := platform.ForMarker(marker)
	if p == nil {
		return escape.Unescape(filename), nil
	}

	prefix, rest, err := expandPrefix(p, filename[size:])
	if err != nil {
		return "", err
	}
	return prefix + escape.Unescape(rest), nil
}

// expandPrefix matches one of the nine root icon forms after a platform
// marker and renders it back to the native directory prefix. The name that
// follows the icon is decoded up to the first bare separator.
func expandPrefix(p platform.Platform, s string) (prefix, rest string, err error) {
	if s == "" {
		return "", "", &IncompleteError{Expected: "well-known root icon"}
	}

	icon, size := utf8.DecodeRuneInString(s)
	for _, root := range platform.Roots() {
		if root.Icon() != icon {
			continue
		}
		name, rest := escape.UnescapeComponent(s[size:], p.Separator())
		return formatRoot(p, root, name), rest, nil
	}
	return "", "", &PrefixError{Expected: "well-known root icon", Remainder: s}
}

func formatRoot(p platform.Platform, root platform.Root, name string) string {
	switch root {
	case platform.Home:
		return p.FormatHome(name)
	case platform.Drive:
		return p.FormatDrive(name)
	default:
		return p.FormatHome(name) + string(p.Separator()) + p.SubdirName(root)
	}
}
