package domain

import "errors"

var (
	// ErrFetchExhausted means every tier, candidate, and retry failed.
	ErrFetchExhausted = errors.New("all fetch tiers exhausted")

	// ErrParse means the raw content could not be read as a gazette document.
	ErrParse = errors.New("content not parseable")

	// ErrDelivery means the mail collaborator failed to transmit the digest.
	ErrDelivery = errors.New("digest delivery failed")
)
