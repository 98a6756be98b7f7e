package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the portfolio_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new repository instance.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot inserts or replaces the snapshot for a space and date.
// The (space_id, date) pair is unique, so re-running the snapshot job
// for the same day overwrites the earlier calculation.
func (r *SnapshotRepository) UpsertSnapshot(snapshot model.PortfolioSnapshot) error {
	query := `
		INSERT INTO portfolio_snapshot (
			id, space_id, date, total_current_value, total_contributed,
			total_distributed, total_fees, tvpi, dpi, irr, asset_count
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(space_id, date) DO UPDATE SET
			total_current_value = excluded.total_current_value,
			total_contributed = excluded.total_contributed,
			total_distributed = excluded.total_distributed,
			total_fees = excluded.total_fees,
			tvpi = excluded.tvpi,
			dpi = excluded.dpi,
			irr = excluded.irr,
			asset_count = excluded.asset_count,
			calculated_at = CURRENT_TIMESTAMP
	`

	var irr sql.NullFloat64
	if snapshot.IRR != nil {
		irr = sql.NullFloat64{Float64: *snapshot.IRR, Valid: true}
	}

	_, err := r.db.Exec(query,
		snapshot.ID,
		snapshot.SpaceID,
		snapshot.Date.Format("2006-01-02"),
		snapshot.TotalCurrentValue,
		snapshot.TotalContributed,
		snapshot.TotalDistributed,
		snapshot.TotalFees,
		snapshot.TVPI,
		snapshot.DPI,
		irr,
		snapshot.AssetCount,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio snapshot: %w", err)
	}

	return nil
}

// GetSnapshotHistory retrieves snapshots for a space within the given
// date range, streaming results through a callback to avoid loading
// large ranges into memory at once. Results arrive in ascending date
// order.
func (r *SnapshotRepository) GetSnapshotHistory(
	spaceID string,
	startDate, endDate time.Time,
	callback func(record model.PortfolioSnapshot) error,
) error {
	query := `
		SELECT id, space_id, date, total_current_value, total_contributed,
		       total_distributed, total_fees, tvpi, dpi, irr, asset_count, calculated_at
		FROM portfolio_snapshot
		WHERE space_id = ?
		AND date >= ?
		AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query,
		spaceID,
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record model.PortfolioSnapshot
		var dateStr, calculatedAtStr string
		var irr sql.NullFloat64

		err := rows.Scan(
			&record.ID,
			&record.SpaceID,
			&dateStr,
			&record.TotalCurrentValue,
			&record.TotalContributed,
			&record.TotalDistributed,
			&record.TotalFees,
			&record.TVPI,
			&record.DPI,
			&irr,
			&record.AssetCount,
			&calculatedAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to scan portfolio_snapshot row: %w", err)
		}

		if irr.Valid {
			value := irr.Float64
			record.IRR = &value
		}

		record.Date, err = ParseTime(dateStr)
		if err != nil {
			return fmt.Errorf("failed to parse date: %w", err)
		}

		record.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		if err := callback(record); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating portfolio_snapshot rows: %w", err)
	}

	return nil
}
