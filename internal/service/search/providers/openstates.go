package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"lawclerk/internal/domain"
	"lawclerk/internal/models"
	"lawclerk/internal/registry"
)

// OpenStatesClient searches state-legislature bills via the OpenStates v3
// API. The index holds legislative records only, so native order is
// preserved without scoring.
type OpenStatesClient struct {
	endpoint   *registry.Endpoint
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenStatesClient creates an OpenStates search client.
func NewOpenStatesClient(endpoint *registry.Endpoint, apiKey string, logger *slog.Logger) *OpenStatesClient {
	return &OpenStatesClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
		logger:     logger,
	}
}

// Provider implements SearchClient.
func (c *OpenStatesClient) Provider() registry.Provider {
	return registry.ProviderOpenStates
}

func (c *OpenStatesClient) buildSearchRequest(req models.SearchRequest) (*requestSpec, error) {
	if c.apiKey == "" {
		return nil, &domain.ConfigurationError{Message: "OpenStates API key is not configured"}
	}

	q := url.Values{}
	q.Set("q", req.Query)
	// This service researches California law; the bill index is always
	// scoped to the state legislature.
	q.Set("jurisdiction", "California")
	q.Set("per_page", strconv.Itoa(c.endpoint.ClampLimit(req.Limit)))
	addDateParam(q, "created_since", req.DateAfter)
	addDateParam(q, "updated_since", req.DateBefore)
	addPageParam(q, "page", req.Page)

	header := http.Header{}
	header.Set(c.endpoint.AuthParam, c.apiKey)

	return &requestSpec{
		URL:    c.endpoint.BaseURL + "?" + q.Encode(),
		Header: header,
	}, nil
}

type openStatesResponse struct {
	Results []openStatesBill `json:"results"`
}

type openStatesBill struct {
	Identifier       string               `json:"identifier"`
	Title            string               `json:"title"`
	OpenStatesURL    string               `json:"openstates_url"`
	LatestActionDate string               `json:"latest_action_date"`
	Abstracts        []openStatesAbstract `json:"abstracts"`
}

type openStatesAbstract struct {
	Abstract string `json:"abstract"`
}

// Search implements SearchClient.
func (c *OpenStatesClient) Search(ctx context.Context, req models.SearchRequest) ([]models.SearchHit, error) {
	spec, err := c.buildSearchRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := execute(ctx, c.httpClient, c.Provider(), spec)
	if err != nil {
		return nil, err
	}

	var parsed openStatesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("openstates returned unparseable payload", "error", err)
		return []models.SearchHit{}, nil
	}

	limit := c.endpoint.ClampLimit(req.Limit)
	hits := make([]models.SearchHit, 0, limit)
	for _, b := range parsed.Results {
		if len(hits) >= limit {
			break
		}
		link := absolutize(c.endpoint.Origin, b.OpenStatesURL)
		if link == "" {
			continue
		}

		// Bills without an abstract keep an empty snippet rather than
		// being dropped.
		snippet := ""
		if len(b.Abstracts) > 0 {
			snippet = cleanSnippet(b.Abstracts[0].Abstract)
		}

		title := b.Title
		if b.Identifier != "" {
			title = b.Identifier + ": " + b.Title
		}

		hits = append(hits, models.SearchHit{
			Title:          title,
			URL:            link,
			Snippet:        snippet,
			DateFiled:      b.LatestActionDate,
			SourceProvider: c.Provider(),
		})
	}
	return hits, nil
}
