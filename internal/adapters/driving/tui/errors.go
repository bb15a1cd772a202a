package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingNavigationService is returned when the navigation service is not provided.
var ErrMissingNavigationService = errors.New("tui: navigation service is required")

// ErrMissingDetailService is returned when the detail service is not provided.
var ErrMissingDetailService = errors.New("tui: detail service is required")
