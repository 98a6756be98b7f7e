package service

import (
	"database/sql"
	"strconv"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/database"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version and the applied
// database migration version.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := database.Version(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  strconv.FormatInt(dbVersion, 10),
	}, nil
}
