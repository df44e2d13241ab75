package handler

import (
	"log/slog"
	"net/http"

	"lawclerk/internal/httputil"
	"lawclerk/internal/service/search/billtext"
)

// BillTextHandler exposes the document-text extraction operation.
type BillTextHandler struct {
	extractor *billtext.Extractor
	logger    *slog.Logger
}

// NewBillTextHandler creates a bill text handler.
func NewBillTextHandler(extractor *billtext.Extractor, logger *slog.Logger) *BillTextHandler {
	return &BillTextHandler{extractor: extractor, logger: logger}
}

// GetText returns the extracted text of a bill's latest version.
// GET /api/bills/{id}/text
func (h *BillTextHandler) GetText(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("id")
	if billID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "bill id is required", "")
		return
	}

	result, err := h.extractor.Extract(r.Context(), billID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}
