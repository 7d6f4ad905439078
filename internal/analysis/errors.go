package analysis

import "errors"

var (
	// ErrNoFetcher is returned when an operation needs the remote node
	// (reference resolution, deep mode) but no fetcher was configured.
	ErrNoFetcher = errors.New("no post fetcher configured")
)
