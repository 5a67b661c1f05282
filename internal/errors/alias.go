package errors

import "github.com/cockroachdb/errors"

// Re-exports so callers use a single errors package for construction,
// wrapping, and inspection.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Is    = errors.Is
	As    = errors.As
)
