package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// BuildRequest assembles the outbound search request.
// It performs no I/O. filetype and site are optional and only become
// request parameters when non-empty.
func BuildRequest(query, filetype, site, apiKey, engineID string) (domain.SearchRequest, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchRequest{}, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if apiKey == "" {
		return domain.SearchRequest{}, fmt.Errorf("%w: %s not set", domain.ErrConfiguration, domain.EnvAPIKey)
	}
	if engineID == "" {
		return domain.SearchRequest{}, fmt.Errorf("%w: %s not set", domain.ErrConfiguration, domain.EnvEngineID)
	}

	return domain.SearchRequest{
		Query: domain.SearchQuery{
			Text:     query,
			FileType: strings.TrimSpace(filetype),
			Domain:   strings.TrimSpace(site),
		},
		APIKey:   apiKey,
		EngineID: engineID,
	}, nil
}
