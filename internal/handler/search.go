package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"lawclerk/internal/httputil"
	"lawclerk/internal/models"
	"lawclerk/internal/service/search"
)

// SearchHandler exposes the search operations over HTTP. It is a thin
// wrapper: parsing and serialization only, all behavior lives in the
// services.
type SearchHandler struct {
	caseLaw *search.CaseLawService
	scholar *search.ScholarService
	bills   *search.BillSearchService
	logger  *slog.Logger
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(
	caseLaw *search.CaseLawService,
	scholar *search.ScholarService,
	bills *search.BillSearchService,
	logger *slog.Logger,
) *SearchHandler {
	return &SearchHandler{
		caseLaw: caseLaw,
		scholar: scholar,
		bills:   bills,
		logger:  logger,
	}
}

// parseSearchRequest accepts the search parameters as a JSON body (POST)
// or query parameters (GET).
func parseSearchRequest(w http.ResponseWriter, r *http.Request) (models.SearchRequest, error) {
	if r.Method == http.MethodPost {
		var req models.SearchRequest
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			return models.SearchRequest{}, err
		}
		return req, nil
	}

	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		query = q.Get("query")
	}
	return models.SearchRequest{
		Query:          strings.TrimSpace(query),
		Limit:          httputil.QueryInt(r, "limit", 0),
		DateAfter:      strings.TrimSpace(q.Get("date_after")),
		DateBefore:     strings.TrimSpace(q.Get("date_before")),
		Page:           httputil.QueryInt(r, "page", 0),
		CaliforniaOnly: httputil.QueryBool(r, "ca_only"),
	}, nil
}

// CaseLaw searches published court opinions.
// GET|POST /api/search/caselaw
func (h *SearchHandler) CaseLaw(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.caseLaw.Search(r.Context(), req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// Scholar searches scholarly and case sources with relevance re-ranking.
// GET|POST /api/search/scholar
func (h *SearchHandler) Scholar(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.scholar.Search(r.Context(), req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// Bills searches the OpenStates bill index.
// GET|POST /api/search/bills
func (h *SearchHandler) Bills(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.bills.SearchOpenStates(r.Context(), req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// Legislation searches the LegiScan bill index.
// GET|POST /api/search/legislation
func (h *SearchHandler) Legislation(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(w, r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.bills.SearchLegiScan(r.Context(), req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HealthCheck reports liveness.
// GET /health
func (h *SearchHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
