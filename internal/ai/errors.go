package ai

import "errors"

var (
	// ErrMissingCredential means the provider API key is absent. Checked
	// before any network call; never retried.
	ErrMissingCredential = errors.New("API key required")

	// ErrInvalidResponse means the provider returned unparseable or
	// structurally wrong data for the declared response shape.
	ErrInvalidResponse = errors.New("invalid provider response")

	// ErrProvider wraps transport-level failures from a provider call.
	ErrProvider = errors.New("provider call failed")
)
