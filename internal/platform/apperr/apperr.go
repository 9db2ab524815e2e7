package apperr

import "errors"

var (
	// ErrStorageUnavailable marks a misconfigured or unreachable persistence
	// backend, as opposed to a year that simply has no data yet.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUnrecognizedFormat marks input text that matched none of the known
	// date-range shapes.
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	// ErrNoKnownPattern marks a year for which no candidate series URL
	// answered the existence probe.
	ErrNoKnownPattern = errors.New("no known url pattern")
)
