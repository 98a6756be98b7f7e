package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/apperrors"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

// PerformanceHandler handles performance and history HTTP requests
type PerformanceHandler struct {
	performanceService *service.PerformanceService
	snapshotService    *service.SnapshotService
}

// NewPerformanceHandler creates a new PerformanceHandler
func NewPerformanceHandler(
	performanceService *service.PerformanceService,
	snapshotService *service.SnapshotService,
) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
		snapshotService:    snapshotService,
	}
}

// AssetPerformance returns the full performance record for one asset
//
// Endpoint: GET /api/asset/{uuid}/performance
func (h *PerformanceHandler) AssetPerformance(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	result, err := h.performanceService.GetAssetPerformance(assetID)
	if err != nil {
		respondServiceError(w, err, "Failed to compute asset performance")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// PortfolioPerformance aggregates performance across a space's assets,
// optionally filtered by asset type
//
// Endpoint: GET /api/space/{uuid}/performance?type=angel&type=venture
func (h *PerformanceHandler) PortfolioPerformance(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "uuid")
	typeFilter := r.URL.Query()["type"]

	summary, err := h.performanceService.GetPortfolioPerformance(r.Context(), spaceID, typeFilter)
	if err != nil {
		respondServiceError(w, err, "Failed to compute portfolio performance")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// SnapshotResponse represents one stored portfolio snapshot
type SnapshotResponse struct {
	Date              string   `json:"date"`
	TotalCurrentValue float64  `json:"totalCurrentValue"`
	TotalContributed  float64  `json:"totalContributed"`
	TotalDistributed  float64  `json:"totalDistributed"`
	TotalFees         float64  `json:"totalFees"`
	TVPI              float64  `json:"tvpi"`
	DPI               float64  `json:"dpi"`
	IRR               *float64 `json:"irr"`
	AssetCount        int      `json:"assetCount"`
}

func snapshotResponse(s model.PortfolioSnapshot) SnapshotResponse {
	return SnapshotResponse{
		Date:              s.Date.Format("2006-01-02"),
		TotalCurrentValue: s.TotalCurrentValue,
		TotalContributed:  s.TotalContributed,
		TotalDistributed:  s.TotalDistributed,
		TotalFees:         s.TotalFees,
		TVPI:              s.TVPI,
		DPI:               s.DPI,
		IRR:               s.IRR,
		AssetCount:        s.AssetCount,
	}
}

// PortfolioHistory returns the stored snapshot series for a space
// within the requested date range. An open start defaults to
// 1970-01-01, an open end to today.
//
// Endpoint: GET /api/space/{uuid}/performance/history?start_date=2024-01-01&end_date=2024-12-31
func (h *PerformanceHandler) PortfolioHistory(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "uuid")

	startDate := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	var err error

	if v := r.URL.Query().Get("start_date"); v != "" {
		startDate, err = time.Parse("2006-01-02", v)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error":  "invalid start_date",
				"detail": err.Error(),
			})
			return
		}
	}

	if v := r.URL.Query().Get("end_date"); v != "" {
		endDate, err = time.Parse("2006-01-02", v)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error":  "invalid end_date",
				"detail": err.Error(),
			})
			return
		}
	}

	if endDate.Before(startDate) {
		respondServiceError(w, apperrors.ErrInvalidDateRange, "Failed to get portfolio history")
		return
	}

	history, err := h.snapshotService.GetSnapshotHistory(r.Context(), spaceID, startDate, endDate)
	if err != nil {
		respondServiceError(w, err, "Failed to get portfolio history")
		return
	}

	response := make([]SnapshotResponse, len(history))
	for i, s := range history {
		response[i] = snapshotResponse(s)
	}

	respondJSON(w, http.StatusOK, response)
}

// RefreshSnapshots recalculates today's snapshot for every space. This
// is the same work the scheduler performs; the endpoint exists so
// internal tooling can force a refresh.
//
// Endpoint: POST /api/system/snapshots/refresh (API key protected)
func (h *PerformanceHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshotService.RefreshAll(r.Context()); err != nil {
		respondServiceError(w, err, "Failed to refresh portfolio snapshots")
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "refreshed"})
}
