package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/validation"
)

// AssetService handles asset-related business logic operations.
// Access checks against the owning space are assumed to have happened
// before any of these methods run.
type AssetService struct {
	assetRepo *repository.AssetRepository
	spaceRepo *repository.SpaceRepository
}

// NewAssetService creates a new AssetService with the provided repository dependencies.
func NewAssetService(
	assetRepo *repository.AssetRepository,
	spaceRepo *repository.SpaceRepository,
) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		spaceRepo: spaceRepo,
	}
}

// GetAssetsBySpace retrieves assets in a space, optionally filtered by
// asset type. Archived assets are excluded unless requested.
func (s *AssetService) GetAssetsBySpace(spaceID string, filter model.AssetFilter) ([]model.Asset, error) {
	// Resolve the space first so a missing tenant surfaces as not-found
	// rather than an empty asset list.
	if _, err := s.spaceRepo.GetSpaceOnID(spaceID); err != nil {
		return nil, err
	}

	return s.assetRepo.GetAssetsForSpace(spaceID, filter)
}

// GetAsset retrieves a single asset by its ID.
func (s *AssetService) GetAsset(assetID string) (model.Asset, error) {
	return s.assetRepo.GetAssetOnID(assetID)
}

// CreateAsset validates and stores a new asset in the given space.
func (s *AssetService) CreateAsset(spaceID string, req request.CreateAssetRequest) (model.Asset, error) {
	if err := validation.ValidateCreateAsset(req); err != nil {
		return model.Asset{}, err
	}

	if _, err := s.spaceRepo.GetSpaceOnID(spaceID); err != nil {
		return model.Asset{}, err
	}

	asset := model.Asset{
		ID:           uuid.New().String(),
		SpaceID:      spaceID,
		Name:         req.Name,
		AssetType:    req.AssetType,
		Currency:     req.Currency,
		CurrentValue: req.CurrentValue,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.assetRepo.CreateAsset(asset); err != nil {
		return model.Asset{}, err
	}

	return asset, nil
}

// UpdateValuation replaces the asset's current value with a fresh
// manual valuation.
func (s *AssetService) UpdateValuation(assetID string, req request.UpdateValuationRequest) error {
	if err := validation.ValidateUpdateValuation(req); err != nil {
		return err
	}

	return s.assetRepo.UpdateCurrentValue(assetID, req.CurrentValue)
}
