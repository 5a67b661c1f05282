// Package glyphname converts an operating-system file path into a reversible
// sequence of Unicode characters that is safe to use as a single filename
// component, and converts such an encoded filename back into the original
// path.
//
// It is intended for tooling that persists per-file derived artifacts
// (caches, extracted features, thumbnails) under a name that records where
// the source file lived:
//
//	name, _ := glyphname.ToFilename("/home/alice/Documents/report.doc")
//	// name == "🐧📄alice／report.doc"
//
//	path, _ := glyphname.ToPath(name)
//	// path == "/home/alice/Documents/report.doc"
//
// Path separators and other filesystem-reserved characters are replaced by
// fullwidth Unicode lookalikes, and well-known directories (home, Documents,
// Downloads, removable drives) of macOS, Linux, and Windows are compacted to
// an OS marker icon plus a directory icon. The package never touches the
// filesystem and does not check that any path exists.
//
// Encoding is total over valid UTF-8 input. Decoding fails only when a
// platform marker icon is not followed by a recognized directory icon; see
// [PrefixError]. Both directions reject bytes that are not valid UTF-8 with
// [InvalidTextError].
package glyphname
