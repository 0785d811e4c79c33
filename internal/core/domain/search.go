package domain

import (
	"net/url"
	"strings"
)

// Upstream query parameter names.
const (
	ParamKey        = "key"
	ParamEngineID   = "cx"
	ParamQuery      = "q"
	ParamFileType   = "fileType"
	ParamSiteSearch = "siteSearch"
)

// SearchQuery is the user-facing part of a search.
// An empty FileType or Domain means the restriction was not requested.
type SearchQuery struct {
	// Text is the search text.
	Text string

	// FileType restricts results to a file type (e.g. "pdf").
	FileType string

	// Domain restricts results to a single site.
	Domain string
}

// SearchRequest is a fully parameterised outbound search.
type SearchRequest struct {
	Query    SearchQuery
	APIKey   string
	EngineID string
}

// Params returns the query parameters sent to the search endpoint.
// fileType and siteSearch are present only when set on the query.
func (r SearchRequest) Params() url.Values {
	v := url.Values{}
	v.Set(ParamKey, r.APIKey)
	v.Set(ParamEngineID, r.EngineID)
	v.Set(ParamQuery, r.Query.Text)
	if ft := strings.TrimSpace(r.Query.FileType); ft != "" {
		v.Set(ParamFileType, ft)
	}
	if site := strings.TrimSpace(r.Query.Domain); site != "" {
		v.Set(ParamSiteSearch, site)
	}
	return v
}

// RawSearchItem is a single item as returned by the search API.
type RawSearchItem struct {
	Title   string
	Link    string
	Snippet string
}

// SearchResult represents a single search hit.
// Results keep the order the search API returned them in.
type SearchResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// EnumeratedResult is a SearchResult with its 1-based position.
type EnumeratedResult struct {
	Index int `json:"index"`
	SearchResult
}

// Enumerate numbers results from 1 in their current order.
func Enumerate(results []SearchResult) []EnumeratedResult {
	out := make([]EnumeratedResult, len(results))
	for i := range results {
		out[i] = EnumeratedResult{Index: i + 1, SearchResult: results[i]}
	}
	return out
}
