package repository

import (
	"database/sql"
	"fmt"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/apperrors"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// SpaceRepository provides data access methods for the space table.
type SpaceRepository struct {
	db *sql.DB
}

// NewSpaceRepository creates a new SpaceRepository with the provided database connection.
func NewSpaceRepository(db *sql.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// GetSpaces retrieves all spaces ordered by creation time.
// Returns an empty slice if no spaces exist.
func (r *SpaceRepository) GetSpaces() ([]model.Space, error) {
	query := `
          SELECT id, name, created_at
          FROM space
          ORDER BY created_at ASC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query space table: %w", err)
	}
	defer rows.Close()

	spaces := []model.Space{}

	for rows.Next() {
		var s model.Space
		var createdAtStr string

		if err := rows.Scan(&s.ID, &s.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan space table results: %w", err)
		}

		s.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		spaces = append(spaces, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating space table: %w", err)
	}

	return spaces, nil
}

// GetSpaceOnID retrieves a single space by its ID.
func (r *SpaceRepository) GetSpaceOnID(spaceID string) (model.Space, error) {
	query := `
          SELECT id, name, created_at
          FROM space
          WHERE id = ?
      `
	var s model.Space
	var createdAtStr string

	err := r.db.QueryRow(query, spaceID).Scan(&s.ID, &s.Name, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.Space{}, apperrors.ErrSpaceNotFound
	}
	if err != nil {
		return model.Space{}, fmt.Errorf("failed to query space: %w", err)
	}

	s.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Space{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return s, nil
}

// CreateSpace inserts a new space record.
func (r *SpaceRepository) CreateSpace(space model.Space) error {
	query := `
          INSERT INTO space (id, name)
          VALUES (?, ?)
      `

	if _, err := r.db.Exec(query, space.ID, space.Name); err != nil {
		return fmt.Errorf("failed to insert space: %w", err)
	}

	return nil
}
