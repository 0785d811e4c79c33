package driven

import "context"

// FetchResponse is the fetched body of a single link.
type FetchResponse struct {
	// ContentType is the raw Content-Type header. Empty when absent.
	ContentType string

	// HasContentType is false when the response carried no Content-Type header.
	HasContentType bool

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Body is the full response body.
	Body []byte
}

// Fetcher downloads the content behind a link.
type Fetcher interface {
	// Fetch retrieves url and reads the whole body.
	Fetch(ctx context.Context, url string) (*FetchResponse, error)
}
