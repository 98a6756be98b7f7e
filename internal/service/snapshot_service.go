package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
)

// SnapshotService maintains the portfolio_snapshot table: a daily
// materialized record of each space's portfolio performance, refreshed
// by the scheduler and usable for history queries without recomputing
// from raw cash flows.
type SnapshotService struct {
	snapshotRepo       *repository.SnapshotRepository
	spaceRepo          *repository.SpaceRepository
	performanceService *PerformanceService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	spaceRepo *repository.SpaceRepository,
	performanceService *PerformanceService,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:       snapshotRepo,
		spaceRepo:          spaceRepo,
		performanceService: performanceService,
	}
}

// RefreshAll recalculates and stores today's snapshot for every space.
// A failure in one space is logged and does not stop the others.
func (s *SnapshotService) RefreshAll(ctx context.Context) error {
	spaces, err := s.spaceRepo.GetSpaces()
	if err != nil {
		return err
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)

	for _, space := range spaces {
		if err := s.RefreshSpace(ctx, space.ID, date); err != nil {
			log.Printf("Failed to refresh snapshot for space %s: %v", space.ID, err)
		}
	}

	return nil
}

// RefreshSpace recalculates and upserts the snapshot for one space on
// the given date.
func (s *SnapshotService) RefreshSpace(ctx context.Context, spaceID string, date time.Time) error {
	summary, err := s.performanceService.GetPortfolioPerformance(ctx, spaceID, nil)
	if err != nil {
		return err
	}

	return s.snapshotRepo.UpsertSnapshot(snapshotFromSummary(spaceID, date, summary))
}

// GetSnapshotHistory returns stored snapshots for a space within the
// date range. When the range reaches today and no snapshot exists for
// today yet, one is computed on demand so the most recent point is
// never stale.
func (s *SnapshotService) GetSnapshotHistory(ctx context.Context, spaceID string, startDate, endDate time.Time) ([]model.PortfolioSnapshot, error) {
	if _, err := s.spaceRepo.GetSpaceOnID(spaceID); err != nil {
		return nil, err
	}

	var history []model.PortfolioSnapshot
	err := s.snapshotRepo.GetSnapshotHistory(spaceID, startDate, endDate, func(record model.PortfolioSnapshot) error {
		history = append(history, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !endDate.Before(today) && !hasSnapshotFor(history, today) {
		summary, err := s.performanceService.GetPortfolioPerformance(ctx, spaceID, nil)
		if err != nil {
			return nil, err
		}

		current := snapshotFromSummary(spaceID, today, summary)
		current.CalculatedAt = time.Now().UTC()
		history = append(history, current)
	}

	return history, nil
}

func hasSnapshotFor(history []model.PortfolioSnapshot, date time.Time) bool {
	for _, record := range history {
		if record.Date.Year() == date.Year() && record.Date.YearDay() == date.YearDay() {
			return true
		}
	}
	return false
}

func snapshotFromSummary(spaceID string, date time.Time, summary model.PortfolioSummary) model.PortfolioSnapshot {
	return model.PortfolioSnapshot{
		ID:                uuid.New().String(),
		SpaceID:           spaceID,
		Date:              date,
		TotalCurrentValue: summary.TotalCurrentValue,
		TotalContributed:  summary.TotalContributed,
		TotalDistributed:  summary.TotalDistributed,
		TotalFees:         summary.TotalFees,
		TVPI:              summary.PortfolioTVPI,
		DPI:               summary.PortfolioDPI,
		IRR:               summary.PortfolioIRR,
		AssetCount:        summary.AssetCount,
	}
}
