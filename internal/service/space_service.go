package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/validation"
)

// SpaceService handles tenant space operations.
type SpaceService struct {
	spaceRepo *repository.SpaceRepository
}

// NewSpaceService creates a new SpaceService with the provided repository dependency.
func NewSpaceService(spaceRepo *repository.SpaceRepository) *SpaceService {
	return &SpaceService{spaceRepo: spaceRepo}
}

// GetSpaces returns all spaces.
func (s *SpaceService) GetSpaces() ([]model.Space, error) {
	return s.spaceRepo.GetSpaces()
}

// GetSpace retrieves a single space by its ID.
func (s *SpaceService) GetSpace(spaceID string) (model.Space, error) {
	return s.spaceRepo.GetSpaceOnID(spaceID)
}

// CreateSpace validates and stores a new space.
func (s *SpaceService) CreateSpace(req request.CreateSpaceRequest) (model.Space, error) {
	if err := validation.ValidateCreateSpace(req); err != nil {
		return model.Space{}, err
	}

	space := model.Space{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.spaceRepo.CreateSpace(space); err != nil {
		return model.Space{}, err
	}

	return space, nil
}
