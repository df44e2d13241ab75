package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"lawclerk/internal/domain"
	"lawclerk/internal/models"
	"lawclerk/internal/registry"
)

// LegiScanClient talks to the LegiScan API: bill search plus the
// two-hop bill → text-version → document lookup used by the document
// text extractor. LegiScan exposes a single endpoint and dispatches on
// the "op" parameter, with the API key in the querystring.
type LegiScanClient struct {
	endpoint   *registry.Endpoint
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLegiScanClient creates a LegiScan client.
func NewLegiScanClient(endpoint *registry.Endpoint, apiKey string, logger *slog.Logger) *LegiScanClient {
	return &LegiScanClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
		logger:     logger,
	}
}

// Provider implements SearchClient.
func (c *LegiScanClient) Provider() registry.Provider {
	return registry.ProviderLegiScan
}

// buildOpRequest assembles a LegiScan op call URL. Every op fails fast
// without a configured key.
func (c *LegiScanClient) buildOpRequest(op string, params url.Values) (*requestSpec, error) {
	if c.apiKey == "" {
		return nil, &domain.ConfigurationError{Message: "LegiScan API key is not configured"}
	}

	q := url.Values{}
	q.Set(c.endpoint.AuthParam, c.apiKey)
	q.Set("op", op)
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}

	return &requestSpec{
		URL:    c.endpoint.BaseURL + "?" + q.Encode(),
		Header: http.Header{},
	}, nil
}

func (c *LegiScanClient) buildSearchRequest(req models.SearchRequest) (*requestSpec, error) {
	params := url.Values{}
	params.Set("state", "CA")
	params.Set("query", req.Query)
	addPageParam(params, "page", req.Page)
	return c.buildOpRequest("getSearch", params)
}

// legiScanSearchResult is one entry of the getSearch "searchresult"
// object. The object is keyed "0", "1", ... plus a "summary" entry, not
// an array.
type legiScanSearchResult struct {
	BillNumber     string `json:"bill_number"`
	BillID         int    `json:"bill_id"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	LastAction     string `json:"last_action"`
	LastActionDate string `json:"last_action_date"`
}

// Search implements SearchClient. LegiScan's getSearch has no date
// filter parameters, so date bounds are applied client-side against
// last_action_date.
func (c *LegiScanClient) Search(ctx context.Context, req models.SearchRequest) ([]models.SearchHit, error) {
	spec, err := c.buildSearchRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := execute(ctx, c.httpClient, c.Provider(), spec)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		SearchResult map[string]json.RawMessage `json:"searchresult"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.SearchResult == nil {
		c.logger.Warn("legiscan returned unparseable search payload", "error", err)
		return []models.SearchHit{}, nil
	}

	// Numeric keys carry the relevance order LegiScan returned.
	keys := make([]int, 0, len(envelope.SearchResult))
	for k := range envelope.SearchResult {
		if n, convErr := strconv.Atoi(k); convErr == nil {
			keys = append(keys, n)
		}
	}
	sort.Ints(keys)

	limit := c.endpoint.ClampLimit(req.Limit)
	hits := make([]models.SearchHit, 0, limit)
	for _, k := range keys {
		if len(hits) >= limit {
			break
		}
		var r legiScanSearchResult
		if err := json.Unmarshal(envelope.SearchResult[strconv.Itoa(k)], &r); err != nil {
			continue
		}
		if !dateInRange(r.LastActionDate, req.DateAfter, req.DateBefore) {
			continue
		}
		link := absolutize(c.endpoint.Origin, r.URL)
		if link == "" {
			continue
		}

		title := r.Title
		if r.BillNumber != "" {
			title = r.BillNumber + ": " + r.Title
		}

		hits = append(hits, models.SearchHit{
			Title:          title,
			URL:            link,
			Snippet:        cleanSnippet(r.LastAction),
			DateFiled:      r.LastActionDate,
			SourceProvider: c.Provider(),
		})
	}
	return hits, nil
}

// dateInRange checks an ISO date against optional inclusive bounds.
// ISO dates compare correctly as strings; undated entries only pass when
// no bounds were requested.
func dateInRange(date, after, before string) bool {
	after = strings.TrimSpace(after)
	before = strings.TrimSpace(before)
	if date == "" {
		return after == "" && before == ""
	}
	if after != "" && date < after {
		return false
	}
	if before != "" && date > before {
		return false
	}
	return true
}

// Bill is the subset of a LegiScan getBill payload the extraction
// pipeline consumes.
type Bill struct {
	BillID      int        `json:"bill_id"`
	BillNumber  string     `json:"bill_number"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StateLink   string     `json:"state_link"`
	URL         string     `json:"url"`
	Texts       []BillText `json:"texts"`
}

// BillText is one text-version pointer attached to a bill.
type BillText struct {
	DocID int    `json:"doc_id"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	Mime  string `json:"mime"`
}

// GetBill fetches one bill record by LegiScan bill id.
func (c *LegiScanClient) GetBill(ctx context.Context, billID string) (*Bill, error) {
	params := url.Values{}
	params.Set("id", billID)
	spec, err := c.buildOpRequest("getBill", params)
	if err != nil {
		return nil, err
	}

	body, err := execute(ctx, c.httpClient, c.Provider(), spec)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Status string `json:"status"`
		Bill   *Bill  `json:"bill"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.ProviderError{
			Provider: string(c.Provider()),
			Status:   http.StatusBadGateway,
			Body:     "unparseable getBill payload",
		}
	}
	if envelope.Bill == nil || envelope.Bill.BillID == 0 {
		return nil, nil
	}
	return envelope.Bill, nil
}

// Document is a fetched bill document: MIME type plus the raw payload,
// which LegiScan delivers base64-encoded.
type Document struct {
	DocID     int    `json:"doc_id"`
	Mime      string `json:"mime"`
	DocBase64 string `json:"doc"`
}

// GetBillText fetches one document by LegiScan doc id.
func (c *LegiScanClient) GetBillText(ctx context.Context, docID int) (*Document, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(docID))
	spec, err := c.buildOpRequest("getBillText", params)
	if err != nil {
		return nil, err
	}

	body, err := execute(ctx, c.httpClient, c.Provider(), spec)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Status string    `json:"status"`
		Text   *Document `json:"text"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.ProviderError{
			Provider: string(c.Provider()),
			Status:   http.StatusBadGateway,
			Body:     "unparseable getBillText payload",
		}
	}
	if envelope.Text == nil {
		return nil, nil
	}
	return envelope.Text, nil
}
