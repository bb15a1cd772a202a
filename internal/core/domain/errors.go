package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPath indicates a deep-link path that matches no route.
	ErrInvalidPath = errors.New("invalid path")

	// ErrCatalogUnavailable indicates the menu or dish collection could not be fetched.
	// The search index stays empty and queries return no results.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrIndexLoading indicates the search index is still being built.
	ErrIndexLoading = errors.New("search index loading")

	// ErrHandoffMismatch indicates a pending handoff targets a different item.
	ErrHandoffMismatch = errors.New("handoff targets another item")
)
