package platform

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// windows implements Windows path conventions: backslash separators, home
// directories under C:\Users, and single-letter drive roots.
type windows struct{}

func (windows) Name() string    { return "windows" }
func (windows) Marker() rune    { return markerWindows }
func (windows) Separator() rune { return windowsSep }

func (windows) FormatHome(user string) string {
	return `C:\Users\` + user
}

func (windows) MatchHome(s string) (string, string, bool) {
	return matchComponent(s, `C:\Users\`, windowsSep)
}

func (windows) FormatDrive(volume string) string {
	return volume + ":"
}

// MatchDrive recognizes a single drive letter followed by a colon. The letter
// is preserved as written; no case folding is applied.
func (windows) MatchDrive(s string) (string, string, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLetter(r) {
		return "", "", false
	}
	rest, found := strings.CutPrefix(s[size:], ":")
	if !found {
		return "", "", false
	}
	return s[:size], rest, true
}

func (windows) SubdirName(root Root) string {
	return subdirName(root, `AppData\Local`)
}
