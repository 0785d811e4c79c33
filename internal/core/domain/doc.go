// Package domain defines the core business entities for gsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchQuery / SearchRequest: what is sent to the search API
//   - RawSearchItem: an item as returned by the search API
//   - SearchResult: the tool's own result record
//   - DownloadOutcome: what happened to one result during a batch download
//   - Config: the configuration value object built once at startup
//
// The download allow-list policy also lives here since it is a pure
// decision over a content type.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
