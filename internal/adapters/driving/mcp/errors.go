// Package mcp provides an MCP (Model Context Protocol) server adapter for menusearch.
// It lets AI assistants search the menu catalog and open item pages.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingNavigationService is returned when the navigation service is not provided.
var ErrMissingNavigationService = errors.New("mcp: navigation service is required")

// ErrMissingDetailService is returned when the detail service is not provided.
var ErrMissingDetailService = errors.New("mcp: detail service is required")
