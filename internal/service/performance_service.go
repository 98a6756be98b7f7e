package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/performance"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
)

// maxConcurrentLoads bounds how many per-asset cash flow queries run at
// once when assembling a portfolio view.
const maxConcurrentLoads = 8

// PerformanceService assembles asset positions from storage and runs
// the performance engine over them. The engine itself is pure; this
// service owns the wall clock and all database access.
type PerformanceService struct {
	assetRepo    *repository.AssetRepository
	cashFlowRepo *repository.CashFlowRepository
	spaceRepo    *repository.SpaceRepository
}

// NewPerformanceService creates a new PerformanceService with the provided repository dependencies.
func NewPerformanceService(
	assetRepo *repository.AssetRepository,
	cashFlowRepo *repository.CashFlowRepository,
	spaceRepo *repository.SpaceRepository,
) *PerformanceService {
	return &PerformanceService{
		assetRepo:    assetRepo,
		cashFlowRepo: cashFlowRepo,
		spaceRepo:    spaceRepo,
	}
}

// GetAssetPerformance computes the full performance record for a single
// asset as of now.
func (s *PerformanceService) GetAssetPerformance(assetID string) (model.AssetPerformance, error) {
	asset, err := s.assetRepo.GetAssetOnID(assetID)
	if err != nil {
		return model.AssetPerformance{}, err
	}

	events, err := s.cashFlowRepo.GetCashFlowsForAsset(assetID)
	if err != nil {
		return model.AssetPerformance{}, err
	}

	position := model.AssetPosition{
		ID:           asset.ID,
		Name:         asset.Name,
		Currency:     asset.Currency,
		CurrentValue: asset.CurrentValue,
		Events:       events,
	}

	return model.AssetPerformance{
		AssetID:           asset.ID,
		Name:              asset.Name,
		Currency:          asset.Currency,
		CurrentValue:      asset.CurrentValue,
		PerformanceResult: performance.Compute(position, time.Now().UTC()),
	}, nil
}

// GetPortfolioPerformance aggregates performance across all
// non-archived assets in a space, optionally restricted to the given
// asset types. Cash flow histories are loaded concurrently, one query
// per asset, before the deterministic aggregation pass.
func (s *PerformanceService) GetPortfolioPerformance(ctx context.Context, spaceID string, typeFilter []string) (model.PortfolioSummary, error) {
	if _, err := s.spaceRepo.GetSpaceOnID(spaceID); err != nil {
		return model.PortfolioSummary{}, err
	}

	positions, err := s.loadPositions(ctx, spaceID, typeFilter)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	return performance.Aggregate(positions, time.Now().UTC()), nil
}

// loadPositions fetches the space's assets and fans out over their cash
// flow histories. Positions come back in the same order the assets were
// returned, so aggregation output is stable across calls.
func (s *PerformanceService) loadPositions(ctx context.Context, spaceID string, typeFilter []string) ([]model.AssetPosition, error) {
	assets, err := s.assetRepo.GetAssetsForSpace(spaceID, model.AssetFilter{Types: typeFilter})
	if err != nil {
		return nil, err
	}

	positions := make([]model.AssetPosition, len(assets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, asset := range assets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			events, err := s.cashFlowRepo.GetCashFlowsForAsset(asset.ID)
			if err != nil {
				return err
			}

			positions[i] = model.AssetPosition{
				ID:           asset.ID,
				Name:         asset.Name,
				Currency:     asset.Currency,
				CurrentValue: asset.CurrentValue,
				Events:       events,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return positions, nil
}
