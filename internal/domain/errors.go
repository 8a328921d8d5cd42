package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrShowNotFound indicates the requested show does not exist upstream
	ErrShowNotFound = errors.New("show not found")

	// ErrCatalogOffline indicates the catalog service is unreachable
	ErrCatalogOffline = errors.New("catalog service is unreachable")

	// ErrAuthFailed indicates the catalog rejected our credentials
	ErrAuthFailed = errors.New("catalog credentials are invalid")
)

// EpisodeNotFoundError reports that an episode ordinal has no corresponding
// episode after exhaustive search. It is a legitimate absence, not a defect:
// callers surface it as a structured result rather than aborting.
type EpisodeNotFoundError struct {
	Number int // Requested ordinal
}

func (e *EpisodeNotFoundError) Error() string {
	return fmt.Sprintf("Episode #%d not found", e.Number)
}

// IsEpisodeNotFound reports whether err wraps an EpisodeNotFoundError.
func IsEpisodeNotFound(err error) bool {
	var nf *EpisodeNotFoundError
	return errors.As(err, &nf)
}
