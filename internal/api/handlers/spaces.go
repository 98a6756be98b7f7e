package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

// SpaceHandler handles space-related HTTP requests
type SpaceHandler struct {
	spaceService *service.SpaceService
}

// NewSpaceHandler creates a new SpaceHandler
func NewSpaceHandler(spaceService *service.SpaceService) *SpaceHandler {
	return &SpaceHandler{
		spaceService: spaceService,
	}
}

// SpaceResponse represents the space get response
type SpaceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Spaces lists all spaces
func (h *SpaceHandler) Spaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.spaceService.GetSpaces()
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve spaces")
		return
	}

	response := make([]SpaceResponse, len(spaces))
	for i, s := range spaces {
		response[i] = SpaceResponse{
			ID:   s.ID,
			Name: s.Name,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// Space retrieves a single space by ID
func (h *SpaceHandler) Space(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "uuid")

	space, err := h.spaceService.GetSpace(spaceID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve space")
		return
	}

	respondJSON(w, http.StatusOK, SpaceResponse{
		ID:   space.ID,
		Name: space.Name,
	})
}

// CreateSpace creates a new space
func (h *SpaceHandler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	space, err := h.spaceService.CreateSpace(req)
	if err != nil {
		respondServiceError(w, err, "Failed to create space")
		return
	}

	respondJSON(w, http.StatusCreated, SpaceResponse{
		ID:   space.ID,
		Name: space.Name,
	})
}
