package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidReleaseTag indicates the release tag is not in x.y.z format.
	// It is a usage error and is reported before any source is contacted.
	ErrInvalidReleaseTag = errors.New("release tag must be in x.y.z format")

	// ErrInvalidVersion indicates a milestone could not be read as x.y.z.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidConfig indicates the release configuration is unusable.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownModule indicates a module identifier is not configured.
	ErrUnknownModule = errors.New("unknown module")

	// Source Errors.

	// ErrSourceUnavailable indicates the pull request source is not configured.
	ErrSourceUnavailable = errors.New("pull request source unavailable")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")
)
