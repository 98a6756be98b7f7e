package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Space table (tenant boundary)
		CREATE TABLE IF NOT EXISTS space (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Asset table
		CREATE TABLE IF NOT EXISTS asset (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			space_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			current_value FLOAT NOT NULL DEFAULT 0 CHECK (current_value >= 0),
			is_archived BOOLEAN DEFAULT FALSE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(space_id) REFERENCES space(id) ON DELETE CASCADE
		);

		-- Cash flow table
		CREATE TABLE IF NOT EXISTS cash_flow (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			asset_id VARCHAR(36) NOT NULL,
			type VARCHAR(20) NOT NULL,
			amount FLOAT NOT NULL CHECK (amount >= 0),
			date DATE NOT NULL,
			note TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(asset_id) REFERENCES asset(id) ON DELETE CASCADE
		);

		-- Portfolio snapshot table
		CREATE TABLE IF NOT EXISTS portfolio_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			space_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			total_current_value FLOAT NOT NULL,
			total_contributed FLOAT NOT NULL,
			total_distributed FLOAT NOT NULL,
			total_fees FLOAT NOT NULL,
			tvpi FLOAT NOT NULL,
			dpi FLOAT NOT NULL,
			irr FLOAT,
			asset_count INTEGER NOT NULL,
			calculated_at DATETIME DEFAULT CURRENT_TIMESTAMP NOT NULL,
			FOREIGN KEY(space_id) REFERENCES space(id) ON DELETE CASCADE,
			CONSTRAINT uq_space_date UNIQUE (space_id, date)
		);

		-- Indexes for performance
		CREATE INDEX IF NOT EXISTS ix_asset_space_id ON asset(space_id);
		CREATE INDEX IF NOT EXISTS ix_asset_space_id_type ON asset(space_id, asset_type);
		CREATE INDEX IF NOT EXISTS ix_cash_flow_asset_id ON cash_flow(asset_id);
		CREATE INDEX IF NOT EXISTS ix_cash_flow_asset_id_date ON cash_flow(asset_id, date);
		CREATE INDEX IF NOT EXISTS ix_portfolio_snapshot_space_id_date ON portfolio_snapshot(space_id, date);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"portfolio_snapshot",
		"cash_flow",
		"asset",
		"space",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
