package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSearchService indicates that no search service was provided.
	ErrNoSearchService = errors.New("search service is required")

	// ErrNoNavigationService indicates that no navigation service was provided.
	ErrNoNavigationService = errors.New("navigation service is required")
)
