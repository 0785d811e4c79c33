package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for gsearch resources.
	uriScheme = "gsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "download-policy",
		Name:        "download-policy",
		Description: "File extensions accepted by downloads without --unsafe",
		MIMEType:    "application/json",
	}, s.handlePolicyResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "search/{query}",
		Name:        "search-results",
		Description: "Web search results for a URL-encoded query",
		MIMEType:    "application/json",
	}, s.handleSearchResource)
}

// handlePolicyResource returns the download allow-list.
func (s *Server) handlePolicyResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	policy := struct {
		AllowedExtensions []string `json:"allowed_extensions"`
	}{
		AllowedExtensions: domain.AllowedExtensions,
	}

	data, err := json.MarshalIndent(policy, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling policy: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleSearchResource runs a search for the query in the URI.
func (s *Server) handleSearchResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	query := extractQuery(req.Params.URI)
	if query == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	results, err := s.ports.Search.Search(ctx, domain.SearchQuery{Text: query})
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	data, err := json.MarshalIndent(toOutput(results), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling results: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractQuery extracts the query from a URI like gsearch://search/{query}.
func extractQuery(uri string) string {
	const prefix = uriScheme + "search/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	query, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(query)
}
