package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/apperrors"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// AssetRepository provides data access methods for the asset table.
// It handles retrieving manually tracked private-markets positions and
// their valuations.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetAssetsForSpace retrieves assets belonging to a space based on filter criteria.
// The filter allows restriction by asset type and control over archived positions.
// Returns an empty slice if no assets match.
func (r *AssetRepository) GetAssetsForSpace(spaceID string, filter model.AssetFilter) ([]model.Asset, error) {
	query := `
          SELECT id, space_id, name, asset_type, currency, current_value, is_archived, created_at
          FROM asset
          WHERE space_id = ?
      `
	args := []any{spaceID}

	if !filter.IncludeArchived {
		query += " AND is_archived = ?"
		args = append(args, 0)
	}

	if len(filter.Types) > 0 {
		placeholders := make([]string, len(filter.Types))
		for i, assetType := range filter.Types {
			placeholders[i] = "?"
			args = append(args, assetType)
		}
		//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
		query += " AND asset_type IN (" + strings.Join(placeholders, ",") + ")"
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetAssetOnID retrieves a single asset by its ID.
func (r *AssetRepository) GetAssetOnID(assetID string) (model.Asset, error) {
	query := `
          SELECT id, space_id, name, asset_type, currency, current_value, is_archived, created_at
          FROM asset
          WHERE id = ?
      `

	row := r.db.QueryRow(query, assetID)

	asset, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, err
	}

	return asset, nil
}

// CreateAsset inserts a new asset record.
func (r *AssetRepository) CreateAsset(asset model.Asset) error {
	query := `
          INSERT INTO asset (id, space_id, name, asset_type, currency, current_value, is_archived)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.Exec(query,
		asset.ID,
		asset.SpaceID,
		asset.Name,
		asset.AssetType,
		asset.Currency,
		asset.CurrentValue,
		asset.IsArchived,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// UpdateCurrentValue replaces an asset's current valuation.
// Returns ErrAssetNotFound when the asset does not exist.
func (r *AssetRepository) UpdateCurrentValue(assetID string, currentValue float64) error {
	query := `
          UPDATE asset
          SET current_value = ?
          WHERE id = ?
      `

	result, err := r.db.Exec(query, currentValue, assetID)
	if err != nil {
		return fmt.Errorf("failed to update asset valuation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows so scanAsset serves both
// single-row and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (model.Asset, error) {
	var a model.Asset
	var createdAtStr string

	err := row.Scan(
		&a.ID,
		&a.SpaceID,
		&a.Name,
		&a.AssetType,
		&a.Currency,
		&a.CurrentValue,
		&a.IsArchived,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Asset{}, err
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to scan asset table results: %w", err)
	}

	a.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return a, nil
}
