package domain

import "errors"

var (
	// ErrInvalidQuery signals malformed or missing search parameters.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidOffer signals an offer that fails structural validation.
	ErrInvalidOffer = errors.New("invalid offer")
	// ErrEmptyBatch signals an ingestion request with no offers.
	ErrEmptyBatch = errors.New("offers list is empty")
)
