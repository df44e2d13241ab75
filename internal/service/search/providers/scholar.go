package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"lawclerk/internal/domain"
	"lawclerk/internal/models"
	"lawclerk/internal/registry"
)

// ScholarClient searches Google Scholar through SerpAPI. Scholar mixes
// primary case law with secondary scholarship in one index, so its
// results go through the relevance scorer downstream; this client only
// normalizes shapes.
type ScholarClient struct {
	endpoint   *registry.Endpoint
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewScholarClient creates a SerpAPI Google Scholar client.
func NewScholarClient(endpoint *registry.Endpoint, apiKey string, logger *slog.Logger) *ScholarClient {
	return &ScholarClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
		logger:     logger,
	}
}

// Provider implements SearchClient.
func (c *ScholarClient) Provider() registry.Provider {
	return registry.ProviderScholar
}

func (c *ScholarClient) buildSearchRequest(req models.SearchRequest) (*requestSpec, error) {
	if c.apiKey == "" {
		return nil, &domain.ConfigurationError{Message: "SerpAPI key is not configured"}
	}

	limit := c.endpoint.ClampLimit(req.Limit)

	q := url.Values{}
	q.Set("engine", "google_scholar")
	q.Set("q", req.Query)
	q.Set("num", strconv.Itoa(limit))
	// Scholar filters by year, not by full date.
	addDateParam(q, "as_ylo", isoYear(req.DateAfter))
	addDateParam(q, "as_yhi", isoYear(req.DateBefore))
	if req.Page > 1 {
		q.Set("start", strconv.Itoa((req.Page-1)*limit))
	}
	q.Set(c.endpoint.AuthParam, c.apiKey)

	return &requestSpec{
		URL:    c.endpoint.BaseURL + "?" + q.Encode(),
		Header: http.Header{},
	}, nil
}

// isoYear extracts the year component of an ISO date, or empty.
func isoYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	year := date[:4]
	if _, err := strconv.Atoi(year); err != nil {
		return ""
	}
	return year
}

type scholarResponse struct {
	OrganicResults []scholarResult `json:"organic_results"`
}

type scholarResult struct {
	Title           string `json:"title"`
	Link            string `json:"link"`
	Snippet         string `json:"snippet"`
	PublicationInfo struct {
		Summary string `json:"summary"`
	} `json:"publication_info"`
}

// Search implements SearchClient. The full provider batch is returned;
// the orchestrator scores it and cuts to the requested limit afterwards.
func (c *ScholarClient) Search(ctx context.Context, req models.SearchRequest) ([]models.SearchHit, error) {
	spec, err := c.buildSearchRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := execute(ctx, c.httpClient, c.Provider(), spec)
	if err != nil {
		return nil, err
	}

	var parsed scholarResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("scholar returned unparseable payload", "error", err)
		return []models.SearchHit{}, nil
	}

	hits := make([]models.SearchHit, 0, len(parsed.OrganicResults))
	for _, r := range parsed.OrganicResults {
		link := absolutize(c.endpoint.Origin, r.Link)
		if link == "" {
			continue
		}

		snippet := cleanSnippet(r.Snippet)
		if s := cleanSnippet(r.PublicationInfo.Summary); s != "" {
			if snippet != "" {
				snippet = snippet + " - " + s
			} else {
				snippet = s
			}
		}

		hits = append(hits, models.SearchHit{
			Title:          r.Title,
			URL:            link,
			Snippet:        snippet,
			SourceProvider: c.Provider(),
		})
	}
	return hits, nil
}
