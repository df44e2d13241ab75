// Package billtext extracts the full text of a legislative bill through
// the LegiScan bill → latest text version → document chain. Each stage
// can end the pipeline with its own named "not found" outcome so callers
// can tell "this bill has no text yet" from "the provider is down".
package billtext

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"lawclerk/internal/config"
	"lawclerk/internal/domain"
	"lawclerk/internal/models"
	"lawclerk/internal/service/search/providers"
)

// decodeFailedPlaceholder substitutes for a document whose payload could
// not be decoded. Decoding failures degrade, they do not abort.
const decodeFailedPlaceholder = "[document could not be decoded]"

// BillAPI is the slice of the LegiScan client the extractor needs.
type BillAPI interface {
	GetBill(ctx context.Context, billID string) (*providers.Bill, error)
	GetBillText(ctx context.Context, docID int) (*providers.Document, error)
}

// Extractor runs the multi-stage document-text pipeline.
type Extractor struct {
	api    BillAPI
	logger *slog.Logger
}

// NewExtractor creates a bill text extractor.
func NewExtractor(api BillAPI, logger *slog.Logger) *Extractor {
	return &Extractor{api: api, logger: logger}
}

// Extract returns the text of the most recent version of a bill.
// Pipeline: locate bill, locate latest text pointer, fetch document,
// decode, sanitize, truncate, assemble.
func (e *Extractor) Extract(ctx context.Context, billID string) (*models.DocumentTextResult, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return nil, &domain.ValidationError{Message: "bill id is required"}
	}

	bill, err := e.api.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, &domain.NotFoundError{Message: "bill " + billID + " not found"}
	}

	doc := latestText(bill.Texts)
	if doc == nil {
		return nil, &domain.NotFoundError{Message: "bill " + billID + " has no text versions yet"}
	}
	if doc.DocID == 0 {
		return nil, &domain.NotFoundError{Message: "bill " + billID + " has no document pointer"}
	}

	payload, err := e.api.GetBillText(ctx, doc.DocID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, &domain.NotFoundError{Message: "bill " + billID + ": document not available"}
	}

	text := e.decode(payload)
	if looksLikeHTML(payload.Mime, text) {
		text = htmlToText(text)
	} else {
		text = collapseWhitespace(text)
	}

	// Fallback: synthesize a short-form substitute from the bill's own
	// metadata when the document yielded nothing.
	if text == "" {
		text = collapseWhitespace(strings.TrimSpace(bill.Title + ". " + bill.Description))
	}
	if text == "" {
		return nil, &domain.NotFoundError{Message: "bill " + billID + ": document is empty"}
	}

	text, truncated := truncate(text)

	sourceURL := bill.StateLink
	if sourceURL == "" {
		sourceURL = bill.URL
	}

	title := bill.Title
	if bill.BillNumber != "" {
		title = bill.BillNumber + ": " + bill.Title
	}

	return &models.DocumentTextResult{
		DocumentID: billID,
		Title:      title,
		Text:       text,
		TextLength: len(text),
		Truncated:  truncated,
		SourceURL:  sourceURL,
	}, nil
}

// decode unpacks the base64 document payload. A malformed payload
// degrades to a fixed placeholder rather than failing the request.
func (e *Extractor) decode(doc *providers.Document) string {
	if doc.DocBase64 == "" {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(doc.DocBase64)
	if err != nil {
		e.logger.Warn("bill document payload failed to decode", "doc_id", doc.DocID, "error", err)
		return decodeFailedPlaceholder
	}
	return string(raw)
}

// latestText picks the most recent text version by date, falling back to
// the last listed entry when dates are absent.
func latestText(texts []providers.BillText) *providers.BillText {
	if len(texts) == 0 {
		return nil
	}

	latest := &texts[len(texts)-1]
	for i := range texts {
		if texts[i].Date > latest.Date {
			latest = &texts[i]
		}
	}
	return latest
}

// truncate cuts text at the document-length cap, appending the explicit
// truncation marker. Text at or under the cap is returned unchanged.
func truncate(text string) (string, bool) {
	if len(text) <= config.MaxDocumentTextLength {
		return text, false
	}
	return text[:config.MaxDocumentTextLength] + config.TruncationMarker, true
}
