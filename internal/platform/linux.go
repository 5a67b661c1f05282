package platform

// linux implements Linux path conventions: POSIX separators, home directories
// under /home, and removable media under /media.
type linux struct{}

func (linux) Name() string    { return "linux" }
func (linux) Marker() rune    { return markerLinux }
func (linux) Separator() rune { return posixSep }

func (linux) FormatHome(user string) string {
	return "/home/" + user
}

func (linux) MatchHome(s string) (string, string, bool) {
	return matchComponent(s, "/home/", posixSep)
}

func (linux) FormatDrive(volume string) string {
	return "/media/" + volume
}

func (linux) MatchDrive(s string) (string, string, bool) {
	return matchComponent(s, "/media/", posixSep)
}

func (linux) SubdirName(root Root) string {
	return subdirName(root, ".local/share")
}
