package repository

import (
	"database/sql"
	"fmt"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// CashFlowRepository provides data access methods for the cash_flow table.
// It handles retrieving and recording the dated capital calls,
// distributions, and fees the performance engine consumes.
type CashFlowRepository struct {
	db *sql.DB
}

// NewCashFlowRepository creates a new CashFlowRepository with the provided database connection.
func NewCashFlowRepository(db *sql.DB) *CashFlowRepository {
	return &CashFlowRepository{db: db}
}

// GetCashFlowsForAsset retrieves all cash flows for a single asset,
// sorted by date in ascending order. Returns an empty slice for an
// asset without any recorded flows.
func (r *CashFlowRepository) GetCashFlowsForAsset(assetID string) ([]model.CashFlowEvent, error) {
	query := `
		SELECT id, asset_id, type, amount, date, note, created_at
		FROM cash_flow
		WHERE asset_id = ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_flow table: %w", err)
	}
	defer rows.Close()

	return collectCashFlows(rows)
}

// CreateCashFlow inserts a new cash-flow record.
func (r *CashFlowRepository) CreateCashFlow(flow model.CashFlowEvent) error {
	query := `
		INSERT INTO cash_flow (id, asset_id, type, amount, date, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		flow.ID,
		flow.AssetID,
		string(flow.Type),
		flow.Amount,
		flow.Date.Format("2006-01-02"),
		flow.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cash flow: %w", err)
	}

	return nil
}

func collectCashFlows(rows *sql.Rows) ([]model.CashFlowEvent, error) {
	flows := []model.CashFlowEvent{}

	for rows.Next() {
		var f model.CashFlowEvent
		var typeStr, dateStr, createdAtStr string
		var note sql.NullString

		err := rows.Scan(
			&f.ID,
			&f.AssetID,
			&typeStr,
			&f.Amount,
			&dateStr,
			&note,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash_flow table results: %w", err)
		}

		f.Type = model.CashFlowType(typeStr)
		f.Note = note.String

		f.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		f.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		flows = append(flows, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_flow table: %w", err)
	}

	return flows, nil
}
