package platform

// darwin implements macOS path conventions: POSIX separators, home
// directories under /Users, and removable volumes under /Volumes.
type darwin struct{}

func (darwin) Name() string    { return "darwin" }
func (darwin) Marker() rune    { return markerDarwin }
func (darwin) Separator() rune { return posixSep }

func (darwin) FormatHome(user string) string {
	return "/Users/" + user
}

func (darwin) MatchHome(s string) (string, string, bool) {
	return matchComponent(s, "/Users/", posixSep)
}

func (darwin) FormatDrive(volume string) string {
	return "/Volumes/" + volume
}

func (darwin) MatchDrive(s string) (string, string, bool) {
	return matchComponent(s, "/Volumes/", posixSep)
}

func (darwin) SubdirName(root Root) string {
	return subdirName(root, "Library/Application Support")
}
