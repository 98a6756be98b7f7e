package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

// CashFlowHandler handles cash flow HTTP requests
type CashFlowHandler struct {
	cashFlowService *service.CashFlowService
}

// NewCashFlowHandler creates a new CashFlowHandler
func NewCashFlowHandler(cashFlowService *service.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{
		cashFlowService: cashFlowService,
	}
}

// CashFlowResponse represents a single cash flow event in API responses.
// Amount is the stored non-negative magnitude; direction follows from type.
type CashFlowResponse struct {
	ID      string  `json:"id"`
	AssetID string  `json:"assetId"`
	Type    string  `json:"type"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Note    string  `json:"note,omitempty"`
}

func cashFlowResponse(e model.CashFlowEvent) CashFlowResponse {
	return CashFlowResponse{
		ID:      e.ID,
		AssetID: e.AssetID,
		Type:    string(e.Type),
		Amount:  e.Amount,
		Date:    e.Date.Format("2006-01-02"),
		Note:    e.Note,
	}
}

// CashFlows lists an asset's cash flow events in ascending date order
//
// Endpoint: GET /api/asset/{uuid}/cashflows
func (h *CashFlowHandler) CashFlows(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	flows, err := h.cashFlowService.GetCashFlows(assetID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve cash flows")
		return
	}

	response := make([]CashFlowResponse, len(flows))
	for i, f := range flows {
		response[i] = cashFlowResponse(f)
	}

	respondJSON(w, http.StatusOK, response)
}

// RecordCashFlow stores a new cash flow event against an asset
//
// Endpoint: POST /api/asset/{uuid}/cashflows
func (h *CashFlowHandler) RecordCashFlow(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	var req request.CreateCashFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	event, err := h.cashFlowService.RecordCashFlow(assetID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to record cash flow")
		return
	}

	respondJSON(w, http.StatusCreated, cashFlowResponse(event))
}
