// Package domain defines the core business entities for menusearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceItem: A dish, bar item or wine record read from the catalog
//   - SearchRecord: One indexed (item, field, language) triple
//   - SearchResult: A SearchRecord annotated with a snippet at query time
//   - NavigationHandoff: The pending context passed from search to a detail page
//   - Surface: The state of the search surface (open, query, results)
//   - DetailPage: The destination page a search result deep-links to
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
