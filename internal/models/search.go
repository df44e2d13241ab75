package models

import "lawclerk/internal/registry"

// SearchRequest is the normalized inbound search request, shared by every
// provider. Provider-specific translation happens in the query builders.
type SearchRequest struct {
	// Query is the free-text query. Must be non-empty after trimming.
	Query string `json:"query"`

	// Limit is the requested result count. Zero means the provider
	// default; out-of-range values are clamped, never rejected.
	Limit int `json:"limit,omitempty"`

	// DateAfter / DateBefore are ISO dates (YYYY-MM-DD) bounding the
	// results. Absent values are omitted from the outbound request.
	DateAfter  string `json:"date_after,omitempty"`
	DateBefore string `json:"date_before,omitempty"`

	// Page is 1-based. Page 1 is never sent explicitly so requests stay
	// canonical.
	Page int `json:"page,omitempty"`

	// CaliforniaOnly restricts results to California authorities where
	// the provider supports it, and enables the jurisdiction scoring
	// boosts where it does not.
	CaliforniaOnly bool `json:"ca_only,omitempty"`
}

// SearchHit is the canonical, provider-agnostic search result. Raw
// provider JSON never crosses the provider-client boundary; every
// provider's shape is adapted into this one.
type SearchHit struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Snippet   string `json:"snippet"`
	DateFiled string `json:"date_filed,omitempty"`

	SourceProvider registry.Provider `json:"source_provider"`

	// RelevanceScore is present only for hits that went through the
	// scorer.
	RelevanceScore *int `json:"relevance_score,omitempty"`
}

// DocumentTextResult is the outcome of the document-text extraction
// pipeline. TextLength always equals len(Text), measured after any
// truncation, so callers can detect truncation without re-scanning.
type DocumentTextResult struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	TextLength int    `json:"text_length"`
	Truncated  bool   `json:"truncated"`
	SourceURL  string `json:"source_url"`
}

// Source is one citation entry in a narrative search response.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt,omitempty"`
}

// NarrativeResponse is the response shape for the case-law and scholar
// search operations: a flattened plain-text content block for a
// downstream LLM consumer plus the structured sources it was built from.
type NarrativeResponse struct {
	Content string   `json:"content"`
	Sources []Source `json:"sources"`
}

// ItemsResponse is the response shape for the legislative search
// operations: the normalized hits, unnarrated.
type ItemsResponse struct {
	Items []SearchHit `json:"items"`
}
