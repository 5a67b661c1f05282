package platform

// Root identifies one of the well-known path prefixes the filename grammar
// recognizes: the home directory, seven known subdirectories beneath it, or a
// removable drive / volume directory.
type Root int

// Well-known roots in grammar priority order.
const (
	Home Root = iota
	Music
	AppData
	Desktop
	Documents
	Downloads
	Pictures
	Videos
	Drive
)

var rootIcons = map[Root]rune{
	Home:      '🏠',
	Music:     '🎵',
	AppData:   '💾',
	Desktop:   '🔝',
	Documents: '📄',
	Downloads: '⏬',
	Pictures:  '🎨',
	Videos:    '🎥',
	Drive:     '🥞',
}

var rootNames = map[Root]string{
	Home:      "home",
	Music:     "music",
	AppData:   "appdata",
	Desktop:   "desktop",
	Documents: "documents",
	Downloads: "downloads",
	Pictures:  "pictures",
	Videos:    "videos",
	Drive:     "drive",
}

// Icon returns the rune that stands for the root in an encoded filename.
func (r Root) Icon() rune {
	return rootIcons[r]
}

func (r Root) String() string {
	if name, ok := rootNames[r]; ok {
		return name
	}
	return "unknown"
}

// Roots returns all well-known roots in the order the decoder tries them.
func Roots() []Root {
	return []Root{Home, Music, AppData, Desktop, Documents, Downloads, Pictures, Videos, Drive}
}

// Subdirs returns the home subdirectory roots in the order the encoder tries
// them. Home and Drive are not subdirectories and are excluded.
func Subdirs() []Root {
	return []Root{Music, AppData, Desktop, Documents, Downloads, Pictures, Videos}
}
