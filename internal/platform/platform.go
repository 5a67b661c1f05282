package platform

import "strings"

// Path separators for the two path syntaxes in play.
const (
	posixSep   = '/'
	windowsSep = '\\'
)

// Platform marker icons. Exactly one appears at the start of an encoded
// filename whose path began with a recognized well-known directory.
const (
	markerDarwin  = '🍎'
	markerLinux   = '🐧'
	markerWindows = '💠'
)

// Platform describes one operating system's path conventions. Implementations
// hold no state and are safe for concurrent use.
type Platform interface {
	// Name returns the platform identifier (darwin, linux, windows).
	Name() string

	// Marker returns the icon that identifies this platform at the start of
	// an encoded filename.
	Marker() rune

	// Separator returns the native path separator.
	Separator() rune

	// FormatHome renders the native home directory path for a user name.
	FormatHome(user string) string

	// MatchHome recognizes the native home directory form at the start of s.
	// On success it returns the user name and the unconsumed remainder, which
	// begins with the separator or is empty.
	MatchHome(s string) (user, rest string, ok bool)

	// FormatDrive renders the native drive or volume directory path.
	FormatDrive(volume string) string

	// MatchDrive recognizes the native drive or volume form at the start of s.
	MatchDrive(s string) (volume, rest string, ok bool)

	// SubdirName returns the platform's literal name for a well-known home
	// subdirectory, e.g. AppData resolves to ".local/share" on linux.
	SubdirName(root Root) string
}

// The three supported platforms.
var (
	Darwin  Platform = darwin{}
	Linux   Platform = linux{}
	Windows Platform = windows{}
)

// Platforms returns the supported platforms in fixed priority order. Wherever
// two conventions could both match, the earlier platform wins.
func Platforms() []Platform {
	return []Platform{Darwin, Linux, Windows}
}

// Detect reports which platform's conventions the path begins with, trying
// each platform's home form before its drive form. It only peeks; no input is
// consumed. Returns nil when no convention matches.
func Detect(path string) Platform {
	for _, p := range Platforms() {
		if _, _, ok := p.MatchHome(path); ok {
			return p
		}
		if _, _, ok := p.MatchDrive(path); ok {
			return p
		}
	}
	return nil
}

// ForMarker returns the platform identified by a marker icon, or nil.
func ForMarker(r rune) Platform {
	for _, p := range Platforms() {
		if p.Marker() == r {
			return p
		}
	}
	return nil
}

// Names of the well-known subdirectories shared by all platforms. AppData has
// no shared name; each platform supplies its own.
var commonSubdirs = map[Root]string{
	Music:     "Music",
	Desktop:   "Desktop",
	Documents: "Documents",
	Downloads: "Downloads",
	Pictures:  "Pictures",
	Videos:    "Videos",
}

func subdirName(root Root, appData string) string {
	if root == AppData {
		return appData
	}
	return commonSubdirs[root]
}

// matchComponent strips prefix from s and takes one or more runes up to the
// separator as the component name, requiring the name to be followed by the
// separator or end of input. rest retains its leading separator.
func matchComponent(s, prefix string, sep rune) (name, rest string, ok bool) {
	tail, found := strings.CutPrefix(s, prefix)
	if !found || tail == "" {
		return "", "", false
	}
	idx := strings.IndexRune(tail, sep)
	if idx == 0 {
		return "", "", false
	}
	if idx < 0 {
		return tail, "", true
	}
	return tail[:idx], tail[idx:], true
}
