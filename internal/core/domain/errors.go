package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates required configuration is missing or invalid.
	// It is fatal and reported before any network activity.
	ErrConfiguration = errors.New("configuration error")

	// ErrSearchRequest indicates the search call failed: transport error,
	// non-2xx status, or an unexpected response body.
	ErrSearchRequest = errors.New("search request failed")

	// ErrDownloadItem indicates a single result could not be downloaded.
	// It never escapes the batch downloader.
	ErrDownloadItem = errors.New("download failed")

	// ErrMissingContentType indicates a fetched response had no content type.
	ErrMissingContentType = errors.New("missing content type")
)
