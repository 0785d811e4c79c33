package services

import "github.com/custodia-labs/gsearch/internal/core/domain"

// MapResults converts API items into search results.
// Order and count are preserved; nothing is filtered here.
func MapResults(items []domain.RawSearchItem) []domain.SearchResult {
	results := make([]domain.SearchResult, len(items))
	for i := range items {
		results[i] = domain.SearchResult{
			Title:       items[i].Title,
			Link:        items[i].Link,
			Description: items[i].Snippet,
		}
	}
	return results
}
