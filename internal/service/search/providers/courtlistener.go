package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"lawclerk/internal/domain"
	"lawclerk/internal/models"
	"lawclerk/internal/registry"
)

// californiaCourts is the CourtListener court filter covering the
// California Supreme Court and Courts of Appeal.
const californiaCourts = "cal calctapp"

// CourtListenerClient searches published court opinions via the
// CourtListener v4 search API. Results arrive ordered by filed date
// descending and are surfaced in native order; the index is already
// restricted to judicial opinions, so no scoring applies.
type CourtListenerClient struct {
	endpoint   *registry.Endpoint
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCourtListenerClient creates a CourtListener search client.
func NewCourtListenerClient(endpoint *registry.Endpoint, token string, logger *slog.Logger) *CourtListenerClient {
	return &CourtListenerClient{
		endpoint:   endpoint,
		token:      token,
		httpClient: newHTTPClient(),
		logger:     logger,
	}
}

// Provider implements SearchClient.
func (c *CourtListenerClient) Provider() registry.Provider {
	return registry.ProviderCourtListener
}

// buildSearchRequest translates a normalized request into a CourtListener
// search URL. Pure: no network I/O.
func (c *CourtListenerClient) buildSearchRequest(req models.SearchRequest) (*requestSpec, error) {
	if c.token == "" {
		return nil, &domain.ConfigurationError{Message: "CourtListener API token is not configured"}
	}

	q := url.Values{}
	q.Set("q", req.Query)
	q.Set("type", "o")
	q.Set("order_by", "dateFiled desc")
	addDateParam(q, "filed_after", req.DateAfter)
	addDateParam(q, "filed_before", req.DateBefore)
	addPageParam(q, "page", req.Page)
	if req.CaliforniaOnly {
		q.Set("court", californiaCourts)
	}

	header := http.Header{}
	header.Set(c.endpoint.AuthParam, "Token "+c.token)

	return &requestSpec{
		URL:    c.endpoint.BaseURL + "?" + q.Encode(),
		Header: header,
	}, nil
}

// courtListenerResponse is the subset of the v4 search payload this
// pipeline consumes.
type courtListenerResponse struct {
	Results []courtListenerResult `json:"results"`
}

type courtListenerResult struct {
	CaseName    string `json:"caseName"`
	AbsoluteURL string `json:"absolute_url"`
	Snippet     string `json:"snippet"`
	DateFiled   string `json:"dateFiled"`
	Court       string `json:"court"`
}

// Search implements SearchClient.
func (c *CourtListenerClient) Search(ctx context.Context, req models.SearchRequest) ([]models.SearchHit, error) {
	spec, err := c.buildSearchRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := execute(ctx, c.httpClient, c.Provider(), spec)
	if err != nil {
		return nil, err
	}

	// A missing or malformed results array degrades to zero hits.
	var parsed courtListenerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("courtlistener returned unparseable payload", "error", err)
		return []models.SearchHit{}, nil
	}

	limit := c.endpoint.ClampLimit(req.Limit)
	hits := make([]models.SearchHit, 0, limit)
	for _, r := range parsed.Results {
		if len(hits) >= limit {
			break
		}
		link := absolutize(c.endpoint.Origin, r.AbsoluteURL)
		if link == "" {
			continue
		}
		hits = append(hits, models.SearchHit{
			Title:          r.CaseName,
			URL:            link,
			Snippet:        cleanSnippet(r.Snippet),
			DateFiled:      r.DateFiled,
			SourceProvider: c.Provider(),
		})
	}
	return hits, nil
}
