// Package catalog groups the driven.Catalog adapters the search index is
// built from:
//
//   - httpapi: the restaurant backend's public JSON API
//   - jsonfile: a local JSON export, watched for changes
//
// The SQLite catalog lives with the other SQLite stores in
// internal/adapters/driven/storage/sqlite and the in-memory one in
// internal/adapters/driven/storage/memory.
package catalog
