// Package mcp provides an MCP (Model Context Protocol) server adapter for gsearch.
// It lets AI assistants run web searches through the same search service as the CLI.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
