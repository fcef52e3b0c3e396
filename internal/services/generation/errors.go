package generation

import (
	"errors"
)

var (
	// ErrInProgress is returned when a generation is already outstanding
	// for the same user. The caller should surface a busy condition, not
	// queue a second request.
	ErrInProgress = errors.New("generation already in progress")

	// ErrMissingCredential is returned when the user has not configured a
	// generative-AI API key.
	ErrMissingCredential = errors.New("generative AI credential not configured")

	// ErrQuotaExhausted maps the model endpoint's rate-limit response. It
	// implies a different remediation than a generic retry.
	ErrQuotaExhausted = errors.New("generative AI quota exhausted")

	// ErrMalformedResponse is returned when the model reply does not
	// contain the expected variations object. Generation is all-or-nothing;
	// there is no partial extraction or repair.
	ErrMalformedResponse = errors.New("model response did not match the expected shape")
)
