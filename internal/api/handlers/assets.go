package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// AssetResponse represents the asset get response
type AssetResponse struct {
	ID           string  `json:"id"`
	SpaceID      string  `json:"spaceId"`
	Name         string  `json:"name"`
	AssetType    string  `json:"assetType"`
	Currency     string  `json:"currency"`
	CurrentValue float64 `json:"currentValue"`
	IsArchived   bool    `json:"isArchived"`
}

func assetResponse(a model.Asset) AssetResponse {
	return AssetResponse{
		ID:           a.ID,
		SpaceID:      a.SpaceID,
		Name:         a.Name,
		AssetType:    a.AssetType,
		Currency:     a.Currency,
		CurrentValue: a.CurrentValue,
		IsArchived:   a.IsArchived,
	}
}

// AssetsBySpace lists assets in a space. Supports type and
// include_archived query parameters.
//
// Endpoint: GET /api/space/{uuid}/assets?type=angel&type=venture&include_archived=true
func (h *AssetHandler) AssetsBySpace(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "uuid")

	filter := model.AssetFilter{
		Types:           r.URL.Query()["type"],
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}

	assets, err := h.assetService.GetAssetsBySpace(spaceID, filter)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve assets")
		return
	}

	response := make([]AssetResponse, len(assets))
	for i, a := range assets {
		response[i] = assetResponse(a)
	}

	respondJSON(w, http.StatusOK, response)
}

// Asset retrieves a single asset by ID
func (h *AssetHandler) Asset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	asset, err := h.assetService.GetAsset(assetID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve asset")
		return
	}

	respondJSON(w, http.StatusOK, assetResponse(asset))
}

// CreateAsset creates a new asset in a space
//
// Endpoint: POST /api/space/{uuid}/assets
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "uuid")

	var req request.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	asset, err := h.assetService.CreateAsset(spaceID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create asset")
		return
	}

	respondJSON(w, http.StatusCreated, assetResponse(asset))
}

// UpdateValuation records a fresh manual valuation on an asset
//
// Endpoint: PUT /api/asset/{uuid}/valuation
func (h *AssetHandler) UpdateValuation(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	var req request.UpdateValuationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := h.assetService.UpdateValuation(assetID, req); err != nil {
		respondServiceError(w, err, "Failed to update valuation")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
