package domain

import "errors"

// Sentinel errors for catalog search. Use errors.Is() to check these.
var (
	// ErrUnknownSource indicates a source other than amazon or walmart.
	ErrUnknownSource = errors.New("unknown catalog source")

	// ErrCatalogNotConfigured indicates the requested source has no credentials.
	ErrCatalogNotConfigured = errors.New("catalog source not configured")

	// ErrProductNotFound indicates the upstream catalog has no product with the given id.
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstream indicates the upstream catalog failed or returned an unreadable response.
	ErrUpstream = errors.New("catalog upstream error")
)
