package catalog

import "errors"

var (
	// ErrInvalidSlug indicates a malformed product detail URL.
	ErrInvalidSlug = errors.New("invalid product URL")
	// ErrNotFound indicates no product matches the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrValidation indicates an admin form that failed validation.
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable tags document-store failures. The underlying
	// cause stays in the chain; callers surface it once, without retry.
	ErrStoreUnavailable = errors.New("catalogue store unavailable")
)
