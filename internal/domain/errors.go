package domain

import "errors"

var (
	// ErrMalformedPayload marks a response body that could not be decoded at all.
	ErrMalformedPayload = errors.New("malformed payload")
)
