// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Catalog: Reads menus and catalog items (HTTP API, JSON file, SQLite)
//   - HandoffStore: Session-keyed slot for the pending navigation handoff
//   - TextExtractor: Converts rich-text fields to plain text before indexing
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - CatalogWatcher: Implemented by catalogs that can signal changes.
//     When present the search index is rebuilt on change.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
