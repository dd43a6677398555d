package analysis

import "errors"

// ErrNoURLs indicates the input contained no non-blank lines. This is the
// only user-facing error condition: the caller shows a warning and skips
// the results section entirely.
var ErrNoURLs = errors.New("no URLs to analyze")

// Errors reserved for HTTP-backed Analyzer implementations. The mock
// never returns them.
var (
	ErrBackendUnreachable = errors.New("analysis backend unreachable")
	ErrBackendTimeout     = errors.New("analysis backend timed out")
)
