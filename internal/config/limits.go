package config

import "time"

const (
	// MaxQueryLength is the maximum length for a search query. Longer
	// queries are rejected rather than truncated so the caller knows the
	// query that ran is the query they sent.
	MaxQueryLength = 500

	// MaxDocumentTextLength is the maximum length of extracted document
	// text. Bill texts routinely run to hundreds of kilobytes; anything
	// past this is cut and marked so downstream LLM consumers get a
	// bounded prompt.
	MaxDocumentTextLength = 50000

	// TruncationMarker is appended to document text that was cut at
	// MaxDocumentTextLength.
	TruncationMarker = "\n\n[... document truncated ...]"

	// ProviderTimeout bounds every outbound provider call. A timed-out
	// call is treated the same as a non-2xx provider response.
	ProviderTimeout = 30 * time.Second
)
