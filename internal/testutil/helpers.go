package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

func NewTestSpaceService(t *testing.T, db *sql.DB) *service.SpaceService {
	t.Helper()

	return service.NewSpaceService(repository.NewSpaceRepository(db))
}

func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)

	return service.NewAssetService(assetRepo, spaceRepo)
}

func NewTestCashFlowService(t *testing.T, db *sql.DB) *service.CashFlowService {
	t.Helper()

	cashFlowRepo := repository.NewCashFlowRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	return service.NewCashFlowService(cashFlowRepo, assetRepo)
}

func NewTestPerformanceService(t *testing.T, db *sql.DB) *service.PerformanceService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	cashFlowRepo := repository.NewCashFlowRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)

	return service.NewPerformanceService(assetRepo, cashFlowRepo, spaceRepo)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)

	return service.NewSnapshotService(snapshotRepo, spaceRepo, NewTestPerformanceService(t, db))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSpaceName generates a unique space name for testing.
//
// Example usage:
//
//	name := testutil.MakeSpaceName("Family Office")
//	// Returns: "Family Office ABC123"
func MakeSpaceName(base string) string {
	if base == "" {
		base = "Space"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeAssetName generates a unique asset name for testing.
//
// Example usage:
//
//	name := testutil.MakeAssetName("Seed Round")
//	// Returns: "Seed Round XYZ789"
func MakeAssetName(base string) string {
	if base == "" {
		base = "Asset"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// Common test constants

var (
	// CommonCurrencies contains frequently used currency codes
	CommonCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "CHF", "AUD"}

	// CommonAssetTypes contains the asset type values used across tests
	CommonAssetTypes = []string{"private_equity", "angel", "venture", "other"}
)

// RandomCurrency returns a random currency from CommonCurrencies.
func RandomCurrency() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonCurrencies[rand.Intn(len(CommonCurrencies))]
}

// RandomAssetType returns a random asset type from CommonAssetTypes.
func RandomAssetType() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonAssetTypes[rand.Intn(len(CommonAssetTypes))]
}
