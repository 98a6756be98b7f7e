package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/request"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/validation"
)

// CashFlowService handles recording and retrieving cash flow events
// against assets.
type CashFlowService struct {
	cashFlowRepo *repository.CashFlowRepository
	assetRepo    *repository.AssetRepository
}

// NewCashFlowService creates a new CashFlowService with the provided repository dependencies.
func NewCashFlowService(
	cashFlowRepo *repository.CashFlowRepository,
	assetRepo *repository.AssetRepository,
) *CashFlowService {
	return &CashFlowService{
		cashFlowRepo: cashFlowRepo,
		assetRepo:    assetRepo,
	}
}

// GetCashFlows returns all cash flow events for an asset in date order.
func (s *CashFlowService) GetCashFlows(assetID string) ([]model.CashFlowEvent, error) {
	if _, err := s.assetRepo.GetAssetOnID(assetID); err != nil {
		return nil, err
	}

	return s.cashFlowRepo.GetCashFlowsForAsset(assetID)
}

// RecordCashFlow validates and stores a new cash flow event. Amounts
// are stored as magnitudes; the event type carries the direction.
func (s *CashFlowService) RecordCashFlow(assetID string, req request.CreateCashFlowRequest) (model.CashFlowEvent, error) {
	if err := validation.ValidateCreateCashFlow(req); err != nil {
		return model.CashFlowEvent{}, err
	}

	if _, err := s.assetRepo.GetAssetOnID(assetID); err != nil {
		return model.CashFlowEvent{}, err
	}

	date, err := repository.ParseTime(req.Date)
	if err != nil {
		return model.CashFlowEvent{}, err
	}

	event := model.CashFlowEvent{
		ID:        uuid.New().String(),
		AssetID:   assetID,
		Type:      model.CashFlowType(req.Type),
		Amount:    req.Amount,
		Date:      date,
		Note:      req.Note,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.cashFlowRepo.CreateCashFlow(event); err != nil {
		return model.CashFlowEvent{}, err
	}

	return event, nil
}
