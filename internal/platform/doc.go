// Package platform describes the path conventions of the three supported
// desktop operating systems: the native separator, the home and drive
// directory forms, and the literal names of the well-known subdirectories
// (Music, Documents, Downloads, and so on).
//
// Each convention is a stateless [Platform] value. Encoding picks one with
// [Detect], which peeks at the start of a native path; decoding picks one
// with [ForMarker] from the marker icon at the start of an encoded filename.
// Ambiguity is resolved by the fixed priority order of [Platforms].
//
// All values and functions in this package are safe for concurrent use.
package platform
