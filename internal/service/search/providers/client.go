// Package providers contains the per-provider query builders and clients.
// Each provider's idiosyncratic request and response shapes are resolved
// here; only canonical models.SearchHit values cross this boundary.
package providers

import (
	"context"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"lawclerk/internal/config"
	"lawclerk/internal/domain"
	"lawclerk/internal/metrics"
	"lawclerk/internal/models"
	"lawclerk/internal/registry"
)

// unreadableBody is the placeholder recorded when a provider error body
// cannot be read.
const unreadableBody = "(unreadable response body)"

// SearchClient is the interface every provider client implements.
type SearchClient interface {
	// Search performs one provider search and returns canonical hits.
	Search(ctx context.Context, req models.SearchRequest) ([]models.SearchHit, error)

	// Provider identifies which provider this client talks to.
	Provider() registry.Provider
}

// requestSpec is a fully-formed outbound request descriptor produced by a
// query builder. Builders are pure: no network I/O happens until execute.
type requestSpec struct {
	URL    string
	Header http.Header
}

// newHTTPClient returns the transport shared by all provider clients.
// Every outbound call carries an explicit timeout; a timed-out call is
// treated the same as a non-2xx provider response.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: config.ProviderTimeout}
}

// execute performs one outbound request. Non-2xx responses are not
// retried; the upstream status and a best-effort body are preserved in
// the returned ProviderError.
func execute(ctx context.Context, client *http.Client, provider registry.Provider, spec *requestSpec) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range spec.Header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(string(provider), "network").Inc()
		metrics.ObserveProviderCall(string(provider), "error", start)
		return nil, &domain.ProviderError{
			Provider: string(provider),
			Status:   http.StatusBadGateway,
			Body:     err.Error(),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.ObserveProviderCall(string(provider), strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := unreadableBody
		if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096)); readErr == nil && len(raw) > 0 {
			body = string(raw)
		}
		metrics.ProviderErrorsTotal.WithLabelValues(string(provider), "status").Inc()
		return nil, &domain.ProviderError{
			Provider: string(provider),
			Status:   resp.StatusCode,
			Body:     body,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues(string(provider), "read").Inc()
		return nil, &domain.ProviderError{
			Provider: string(provider),
			Status:   http.StatusBadGateway,
			Body:     unreadableBody,
		}
	}
	return body, nil
}

// snippetPolicy strips every tag from provider snippet HTML.
// CourtListener highlights matches with markup; the canonical hit carries
// plain text only.
var snippetPolicy = bluemonday.StrictPolicy()

var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanSnippet strips markup from a provider snippet and collapses
// whitespace runs to single spaces.
func cleanSnippet(s string) string {
	s = snippetPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// absolutize prefixes provider-relative record paths with the provider's
// canonical origin. Absolute links pass through untouched; anything that
// cannot be resolved to an absolute link returns empty so the hit is
// dropped rather than surfaced with a dead link.
func absolutize(origin, link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	if origin == "" {
		return ""
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return origin + link
}

// addDateParam appends a date filter parameter when the value is present
// and non-empty after trimming. Absent values are omitted entirely.
func addDateParam(q url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q.Set(key, v)
	}
}

// addPageParam appends a page parameter only for pages past the first,
// keeping page-1 requests canonical.
func addPageParam(q url.Values, key string, page int) {
	if page > 1 {
		q.Set(key, strconv.Itoa(page))
	}
}
