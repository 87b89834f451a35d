package webview

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/beaconlabs/beacon/core"
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"
	"github.com/rs/zerolog"
)

type handler struct {
	cfg *contract.Config
}

func newHandler(cfg *contract.Config) *handler {
	if cfg == nil {
		cfg = &contract.Config{Category: contract.DefaultCategory}
	}
	return &handler{cfg: cfg}
}

type errorResponse struct {
	Error string `json:"error"`
}

// RenderCategory accepts a report document as the request body and responds
// with the rendered category sections.
func (h *handler) RenderCategory(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	report, err := schema.LoadReport(r.Body)
	if err != nil {
		logger.Warn().Err(err).Msg("rejecting malformed report")
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid report: %v", err))
		return
	}

	categoryID := r.URL.Query().Get("category")
	if categoryID == "" {
		categoryID = h.cfg.Category
	}
	if report.Category(categoryID) == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("report has no category %q", categoryID))
		return
	}

	section, err := core.RenderReportCategory(report, categoryID, nil, h.cfg.Strict)
	if err != nil {
		logger.Error().Err(err).Msg("render failed")
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("render failed: %v", err))
		return
	}

	writeResponse(w, http.StatusOK, section)
}

// Healthz reports liveness.
func (h *handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeResponse(w, status, errorResponse{Error: msg})
}
