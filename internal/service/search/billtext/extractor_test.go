package billtext

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"lawclerk/internal/config"
	"lawclerk/internal/domain"
	"lawclerk/internal/service/search/providers"
)

// mockBillAPI is a test implementation of BillAPI.
type mockBillAPI struct {
	bill    *providers.Bill
	billErr error
	doc     *providers.Document
	docErr  error
}

func (m *mockBillAPI) GetBill(ctx context.Context, billID string) (*providers.Bill, error) {
	return m.bill, m.billErr
}

func (m *mockBillAPI) GetBillText(ctx context.Context, docID int) (*providers.Document, error) {
	return m.doc, m.docErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func billWithText(docID int) *providers.Bill {
	return &providers.Bill{
		BillID:     12345,
		BillNumber: "SB 243",
		Title:      "Companion chatbots",
		StateLink:  "https://leginfo.legislature.ca.gov/faces/billNavClient.xhtml?bill_id=202320240SB243",
		Texts: []providers.BillText{
			{DocID: docID, Date: "2025-10-13", Mime: "text/html"},
		},
	}
}

func TestExtract_PlainTextDocument(t *testing.T) {
	api := &mockBillAPI{
		bill: billWithText(77),
		doc:  &providers.Document{DocID: 77, Mime: "text/plain", DocBase64: b64("An act relating to chatbots.")},
	}
	e := NewExtractor(api, testLogger())

	result, err := e.Extract(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if result.Text != "An act relating to chatbots." {
		t.Errorf("unexpected text: %q", result.Text)
	}
	if result.TextLength != len(result.Text) {
		t.Errorf("TextLength = %d, want %d", result.TextLength, len(result.Text))
	}
	if result.Truncated {
		t.Error("short document marked truncated")
	}
	if result.Title != "SB 243: Companion chatbots" {
		t.Errorf("unexpected title: %q", result.Title)
	}
	if result.SourceURL == "" {
		t.Error("expected source URL")
	}
}

func TestExtract_HTMLDocumentSanitized(t *testing.T) {
	html := `<!DOCTYPE html><html><head><style>body { color: red; }</style></head>` +
		`<body><script>alert("tracking");</script><p>Section  1.</p><p>This act shall be known as the Act.</p></body></html>`
	api := &mockBillAPI{
		bill: billWithText(77),
		doc:  &providers.Document{DocID: 77, Mime: "text/html", DocBase64: b64(html)},
	}
	e := NewExtractor(api, testLogger())

	result, err := e.Extract(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if strings.Contains(result.Text, "alert") || strings.Contains(result.Text, "tracking") {
		t.Errorf("script contents leaked into text: %q", result.Text)
	}
	if strings.Contains(result.Text, "color") {
		t.Errorf("style contents leaked into text: %q", result.Text)
	}
	if strings.Contains(result.Text, "<") {
		t.Errorf("tags leaked into text: %q", result.Text)
	}
	if result.Text != "Section 1. This act shall be known as the Act." {
		t.Errorf("unexpected sanitized text: %q", result.Text)
	}
}

func TestExtract_HTMLDetectedByMarkerWithoutMime(t *testing.T) {
	html := `<html><body><p>Marker detected.</p></body></html>`
	api := &mockBillAPI{
		bill: billWithText(77),
		doc:  &providers.Document{DocID: 77, Mime: "", DocBase64: b64(html)},
	}
	e := NewExtractor(api, testLogger())

	result, err := e.Extract(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if result.Text != "Marker detected." {
		t.Errorf("unexpected text: %q", result.Text)
	}
}

func TestExtract_NotFoundStages(t *testing.T) {
	tests := []struct {
		name    string
		api     *mockBillAPI
		wantMsg string
	}{
		{
			name:    "bill missing",
			api:     &mockBillAPI{bill: nil},
			wantMsg: "not found",
		},
		{
			name:    "no text versions",
			api:     &mockBillAPI{bill: &providers.Bill{BillID: 1, Title: "t", Texts: nil}},
			wantMsg: "no text versions",
		},
		{
			name: "no document pointer",
			api: &mockBillAPI{bill: &providers.Bill{
				BillID: 1, Title: "t",
				Texts: []providers.BillText{{DocID: 0, Date: "2025-01-01"}},
			}},
			wantMsg: "no document pointer",
		},
		{
			name:    "document unavailable",
			api:     &mockBillAPI{bill: billWithText(77), doc: nil},
			wantMsg: "document not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(tt.api, testLogger())
			_, err := e.Extract(context.Background(), "12345")
			if err == nil {
				t.Fatal("expected error")
			}
			var nf *domain.NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("expected NotFoundError, got %T: %v", err, err)
			}
			if !strings.Contains(nf.Message, tt.wantMsg) {
				t.Errorf("message %q does not name the stage %q", nf.Message, tt.wantMsg)
			}
		})
	}
}

func TestExtract_EmptyDocumentFallsBackToBillMetadata(t *testing.T) {
	bill := billWithText(77)
	bill.Description = "An act to add Section 22601 to the Business and Professions Code."
	api := &mockBillAPI{
		bill: bill,
		doc:  &providers.Document{DocID: 77, Mime: "text/plain", DocBase64: ""},
	}
	e := NewExtractor(api, testLogger())

	result, err := e.Extract(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if !strings.Contains(result.Text, "Companion chatbots") || !strings.Contains(result.Text, "22601") {
		t.Errorf("fallback text missing bill metadata: %q", result.Text)
	}
}

func TestExtract_DecodeFailureDegradesToPlaceholder(t *testing.T) {
	api := &mockBillAPI{
		bill: billWithText(77),
		doc:  &providers.Document{DocID: 77, Mime: "text/plain", DocBase64: "%%% not base64 %%%"},
	}
	e := NewExtractor(api, testLogger())

	result, err := e.Extract(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if result.Text != decodeFailedPlaceholder {
		t.Errorf("got %q, want placeholder %q", result.Text, decodeFailedPlaceholder)
	}
}

func TestExtract_ProviderErrorPassesThrough(t *testing.T) {
	provErr := &domain.ProviderError{Provider: "legiscan", Status: 503, Body: "down"}
	api := &mockBillAPI{billErr: provErr}
	e := NewExtractor(api, testLogger())

	_, err := e.Extract(context.Background(), "12345")
	var got *domain.ProviderError
	if !errors.As(err, &got) || got.Status != 503 {
		t.Fatalf("expected provider error with status 503, got %v", err)
	}
}

func TestExtract_EmptyBillID(t *testing.T) {
	e := NewExtractor(&mockBillAPI{}, testLogger())
	_, err := e.Extract(context.Background(), "   ")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	t.Run("over the cap", func(t *testing.T) {
		long := strings.Repeat("a", config.MaxDocumentTextLength+500)
		got, truncated := truncate(long)
		if !truncated {
			t.Fatal("expected truncation")
		}
		wantLen := config.MaxDocumentTextLength + len(config.TruncationMarker)
		if len(got) != wantLen {
			t.Errorf("len = %d, want %d", len(got), wantLen)
		}
		if !strings.HasSuffix(got, config.TruncationMarker) {
			t.Error("truncated text does not end with the marker")
		}
	})

	t.Run("at the cap", func(t *testing.T) {
		exact := strings.Repeat("b", config.MaxDocumentTextLength)
		got, truncated := truncate(exact)
		if truncated || got != exact {
			t.Error("text at the cap must pass through unchanged")
		}
	})

	t.Run("under the cap", func(t *testing.T) {
		got, truncated := truncate("short")
		if truncated || got != "short" {
			t.Error("short text must pass through unchanged")
		}
	})
}

func TestExtract_TruncatedResultLengthIncludesMarker(t *testing.T) {
	long := strings.Repeat("x", config.MaxDocumentTextLength+1000)
	api := &mockBillAPI{
		bill: billWithText(77),
		doc:  &providers.Document{DocID: 77, Mime: "text/plain", DocBase64: b64(long)},
	}
	e := NewExtractor(api, testLogger())

	result, err := e.Extract(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if !result.Truncated {
		t.Fatal("expected truncated result")
	}
	want := config.MaxDocumentTextLength + len(config.TruncationMarker)
	if result.TextLength != want || result.TextLength != len(result.Text) {
		t.Errorf("TextLength = %d (len %d), want %d", result.TextLength, len(result.Text), want)
	}
}

func TestLatestText(t *testing.T) {
	texts := []providers.BillText{
		{DocID: 1, Date: "2025-01-01"},
		{DocID: 3, Date: "2025-06-15"},
		{DocID: 2, Date: "2025-03-10"},
	}
	got := latestText(texts)
	if got.DocID != 3 {
		t.Errorf("latestText picked doc %d, want 3", got.DocID)
	}

	undated := []providers.BillText{{DocID: 5}, {DocID: 9}}
	if latestText(undated).DocID != 9 {
		t.Error("undated versions should fall back to the last listed entry")
	}
}
