// Package logging provides structured logging for the glyphpath CLI on top
// of log/slog.
//
// [New] builds a logger from a [Config]; [Default] is the stderr text logger
// used when nothing is configured. The text [Handler] colorizes output when
// the destination is a terminal that supports it (NO_COLOR and TERM=dumb are
// respected). [MultiHandler] fans records out to several handlers, which the
// CLI uses to mirror logs to a file. [ForTest] routes log output through
// testing.T so it only appears for failing or verbose test runs.
package logging
