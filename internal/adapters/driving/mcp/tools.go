package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// WebSearchInput is the input schema for the web_search tool.
type WebSearchInput struct {
	Query    string `json:"query" jsonschema:"the web search query"`
	FileType string `json:"filetype,omitempty" jsonschema:"restrict results to a file type such as pdf"`
	Domain   string `json:"domain,omitempty" jsonschema:"restrict results to a site or domain"`
}

// WebSearchOutput is the output schema for the web_search tool.
type WebSearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput represents a single search result.
type ResultOutput struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "web_search",
		Description: "Search the web with Google Custom Search",
	}, s.handleWebSearch)
}

// handleWebSearch handles the web_search tool invocation.
func (s *Server) handleWebSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WebSearchInput,
) (*mcp.CallToolResult, WebSearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, domain.SearchQuery{
		Text:     input.Query,
		FileType: input.FileType,
		Domain:   input.Domain,
	})
	if err != nil {
		return nil, WebSearchOutput{}, err
	}

	return nil, toOutput(results), nil
}

func toOutput(results []domain.SearchResult) WebSearchOutput {
	output := WebSearchOutput{
		Results: make([]ResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = ResultOutput{
			Title:       results[i].Title,
			Link:        results[i].Link,
			Description: results[i].Description,
		}
	}

	return output
}
