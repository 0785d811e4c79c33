package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// Engine executes searches against the Custom Search JSON API.
type Engine struct {
	svc *customsearch.Service
}

// NewEngine creates a Custom Search client for cfg.Endpoint.
// cfg.SearchTimeout bounds every call made through the engine.
func NewEngine(ctx context.Context, cfg domain.Config) (*Engine, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = domain.DefaultSearchEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	svc, err := customsearch.NewService(ctx,
		option.WithEndpoint(endpoint),
		option.WithHTTPClient(&http.Client{Timeout: cfg.SearchTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("create custom search client: %w", err)
	}

	return &Engine{svc: svc}, nil
}

// Execute issues a single cse.list call. A response without an items
// field is treated as a failure.
func (e *Engine) Execute(ctx context.Context, req domain.SearchRequest) ([]domain.RawSearchItem, error) {
	call := e.svc.Cse.List().
		Context(ctx).
		Q(req.Query.Text).
		Cx(req.EngineID)

	params := req.Params()
	if params.Has(domain.ParamFileType) {
		call = call.FileType(params.Get(domain.ParamFileType))
	}
	if params.Has(domain.ParamSiteSearch) {
		call = call.SiteSearch(params.Get(domain.ParamSiteSearch))
	}

	logger.Debug("GET %scustomsearch/v1 (q=%q)", e.svc.BasePath, req.Query.Text)
	res, err := call.Do(googleapi.QueryParameter(domain.ParamKey, req.APIKey))
	if err != nil {
		return nil, WrapError(err)
	}

	// encoding/json leaves the slice nil only when the field is absent or null.
	if res.Items == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchRequest, ErrNoItems)
	}

	items := make([]domain.RawSearchItem, len(res.Items))
	for i, item := range res.Items {
		if item == nil {
			continue
		}
		items[i] = domain.RawSearchItem{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		}
	}

	logger.Debug("Received %d items", len(items))
	return items, nil
}
