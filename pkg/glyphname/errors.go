package glyphname

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the three failure kinds. Callers check kinds with
// errors.Is and retrieve payloads with errors.As against the typed errors
// below.
var (
	// ErrInvalidText indicates the input bytes are not valid UTF-8.
	ErrInvalidText = errors.New("input is not valid UTF-8")

	// ErrPrefixSyntax indicates a platform marker icon was present but the
	// following characters match no well-known root form.
	ErrPrefixSyntax = errors.New("invalid prefix syntax")

	// ErrIncompleteInput indicates the grammar ran out of input where a rule
	// required more. This signals a malformed producer rather than ordinary
	// bad user input.
	ErrIncompleteInput = errors.New("incomplete input")
)

// InvalidTextError reports input bytes that could not be decoded as UTF-8.
// Raw holds the exact bytes as supplied.
type InvalidTextError struct {
	Raw []byte
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("input is not valid UTF-8: %q", e.Raw)
}

// Unwrap makes errors.Is(err, ErrInvalidText) hold.
func (e *InvalidTextError) Unwrap() error {
	return ErrInvalidText
}

// PrefixError reports an encoded filename whose platform marker is not
// followed by any recognized well-known root form. Marker icons are escape
// targets, so an unescaped marker always means prefix syntax was intended;
// the decoder never degrades to treating it as literal text.
type PrefixError struct {
	// Expected names the grammar rule that failed to match.
	Expected string

	// Remainder is the unconsumed input following the platform marker.
	Remainder string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("invalid prefix syntax: expected %s at %q", e.Expected, e.Remainder)
}

// Unwrap makes errors.Is(err, ErrPrefixSyntax) hold.
func (e *PrefixError) Unwrap() error {
	return ErrPrefixSyntax
}

// IncompleteError reports input that ended where the grammar required more,
// such as a filename consisting of a bare platform marker.
type IncompleteError struct {
	// Expected names what the grammar needed next.
	Expected string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete input: expected %s", e.Expected)
}

// Unwrap makes errors.Is(err, ErrIncompleteInput) hold.
func (e *IncompleteError) Unwrap() error {
	return ErrIncompleteInput
}
