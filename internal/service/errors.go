package service

import "errors"

// Failure taxonomy for the curation workflow. Handlers map each of these
// to exactly one notification; none are fatal to the process.
var (
	// Resolver failures, from most to least specific.
	ErrNoPattern         = errors.New("input matches no channel id, channel link, or handle")
	ErrHandleNotFound    = errors.New("no channel found for handle")
	ErrMissingCredential = errors.New("catalog api credential is not configured")
	ErrLookupFailed      = errors.New("channel lookup failed")

	// Catalog failures.
	ErrFetchFailed = errors.New("failed to fetch videos for month")

	// Submission preconditions and guards.
	ErrChannelNotReady = errors.New("channel info is still loading")
	ErrEmptySelection  = errors.New("no videos selected")
	ErrSubmitInFlight  = errors.New("a submission is already in progress")
)
