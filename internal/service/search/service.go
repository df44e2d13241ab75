// Package search drives one logical query end-to-end: request
// validation, provider invocation, scoring where the provider needs it,
// and response assembly.
package search

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lawclerk/internal/config"
	"lawclerk/internal/domain"
	"lawclerk/internal/models"
	"lawclerk/internal/registry"
	"lawclerk/internal/service/search/providers"
	"lawclerk/internal/service/search/scoring"
)

// normalize trims the free-text query and defaults the page, then
// validates. Validation failures are reported before any network call.
func normalize(req *models.SearchRequest) error {
	req.Query = strings.TrimSpace(req.Query)
	if req.Page == 0 {
		req.Page = 1
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.Query,
			validation.Required.Error("query must not be empty"),
			validation.Length(1, config.MaxQueryLength),
		),
		validation.Field(&req.Page, validation.Min(1)),
		validation.Field(&req.DateAfter, validation.Date("2006-01-02")),
		validation.Field(&req.DateBefore, validation.Date("2006-01-02")),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// CaseLawService answers case-law queries against the opinion-search
// provider. Native filed-date order is preserved; the index is already
// authority-filtered.
type CaseLawService struct {
	client providers.SearchClient
	logger *slog.Logger
}

// NewCaseLawService creates a case-law search service.
func NewCaseLawService(client providers.SearchClient, logger *slog.Logger) *CaseLawService {
	return &CaseLawService{client: client, logger: logger}
}

// Search runs one opinion search and assembles the narrative response.
func (s *CaseLawService) Search(ctx context.Context, req models.SearchRequest) (*models.NarrativeResponse, error) {
	if err := normalize(&req); err != nil {
		return nil, err
	}

	hits, err := s.client.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("case law search complete", "query", req.Query, "hits", len(hits))
	return buildNarrative(req.Query, hits), nil
}

// ScholarService answers queries against the scholarly-search provider,
// whose native ranking mixes primary case law with secondary
// scholarship. Results are re-ranked by the heuristic scorer and cut to
// the requested limit.
type ScholarService struct {
	client   providers.SearchClient
	endpoint *registry.Endpoint
	logger   *slog.Logger
}

// NewScholarService creates a scholar search service.
func NewScholarService(client providers.SearchClient, endpoint *registry.Endpoint, logger *slog.Logger) *ScholarService {
	return &ScholarService{client: client, endpoint: endpoint, logger: logger}
}

// Search runs one scholar search, scores the batch, and assembles the
// narrative response in rank order.
func (s *ScholarService) Search(ctx context.Context, req models.SearchRequest) (*models.NarrativeResponse, error) {
	if err := normalize(&req); err != nil {
		return nil, err
	}

	hits, err := s.client.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	ranked := scoring.Rank(hits, scoring.Options{CaliforniaOnly: req.CaliforniaOnly}, s.endpoint.ClampLimit(req.Limit))

	s.logger.Debug("scholar search complete", "query", req.Query, "hits", len(ranked))
	return buildNarrative(req.Query, ranked), nil
}

// BillSearchService answers legislative queries against the two bill
// providers. Both indexes hold legislative records only, so native order
// is preserved.
type BillSearchService struct {
	openStates providers.SearchClient
	legiScan   providers.SearchClient
	logger     *slog.Logger
}

// NewBillSearchService creates a bill search service.
func NewBillSearchService(openStates, legiScan providers.SearchClient, logger *slog.Logger) *BillSearchService {
	return &BillSearchService{openStates: openStates, legiScan: legiScan, logger: logger}
}

// SearchOpenStates searches the OpenStates bill index.
func (s *BillSearchService) SearchOpenStates(ctx context.Context, req models.SearchRequest) (*models.ItemsResponse, error) {
	return s.search(ctx, s.openStates, req)
}

// SearchLegiScan searches the LegiScan bill index.
func (s *BillSearchService) SearchLegiScan(ctx context.Context, req models.SearchRequest) (*models.ItemsResponse, error) {
	return s.search(ctx, s.legiScan, req)
}

func (s *BillSearchService) search(ctx context.Context, client providers.SearchClient, req models.SearchRequest) (*models.ItemsResponse, error) {
	if err := normalize(&req); err != nil {
		return nil, err
	}

	hits, err := client.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("bill search complete",
		"provider", client.Provider(),
		"query", req.Query,
		"hits", len(hits),
	)
	return &models.ItemsResponse{Items: hits}, nil
}
