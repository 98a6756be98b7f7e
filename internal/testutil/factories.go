package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// SpaceBuilder provides a fluent interface for creating test spaces.
//
// Example usage:
//
//	// Simple creation with defaults
//	space := testutil.NewSpace().Build(t, db)
//
//	// Customized space
//	space := testutil.NewSpace().
//	    WithName("Family Office").
//	    Build(t, db)
type SpaceBuilder struct {
	ID   string
	Name string
}

// NewSpace creates a SpaceBuilder with sensible defaults.
func NewSpace() *SpaceBuilder {
	return &SpaceBuilder{
		ID:   MakeID(),
		Name: MakeSpaceName("Test Space"),
	}
}

// WithID sets a custom ID.
func (b *SpaceBuilder) WithID(id string) *SpaceBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *SpaceBuilder) WithName(name string) *SpaceBuilder {
	b.Name = name
	return b
}

// Build creates the space in the database and returns it.
func (b *SpaceBuilder) Build(t *testing.T, db *sql.DB) model.Space {
	t.Helper()

	query := `
		INSERT INTO space (id, name)
		VALUES (?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name)
	if err != nil {
		t.Fatalf("Failed to create test space: %v", err)
	}

	return model.Space{
		ID:   b.ID,
		Name: b.Name,
	}
}

// CreateSpace creates a space with the given name and default values.
//
// Example usage:
//
//	space := testutil.CreateSpace(t, db, "My Space")
func CreateSpace(t *testing.T, db *sql.DB, name string) model.Space {
	t.Helper()
	return NewSpace().WithName(name).Build(t, db)
}

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	asset := testutil.NewAsset(space.ID).
//	    WithAssetType("angel").
//	    WithCurrentValue(250000).
//	    Build(t, db)
type AssetBuilder struct {
	ID           string
	SpaceID      string
	Name         string
	AssetType    string
	Currency     string
	CurrentValue float64
	IsArchived   bool
}

// NewAsset creates an AssetBuilder with sensible defaults, attached to
// the given space.
func NewAsset(spaceID string) *AssetBuilder {
	return &AssetBuilder{
		ID:           MakeID(),
		SpaceID:      spaceID,
		Name:         MakeAssetName("Test Asset"),
		AssetType:    "private_equity",
		Currency:     "EUR",
		CurrentValue: 100000,
		IsArchived:   false,
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithAssetType sets a custom asset type.
func (b *AssetBuilder) WithAssetType(assetType string) *AssetBuilder {
	b.AssetType = assetType
	return b
}

// WithCurrency sets a custom currency.
func (b *AssetBuilder) WithCurrency(currency string) *AssetBuilder {
	b.Currency = currency
	return b
}

// WithCurrentValue sets a custom current valuation.
func (b *AssetBuilder) WithCurrentValue(value float64) *AssetBuilder {
	b.CurrentValue = value
	return b
}

// Archived marks the asset as archived.
func (b *AssetBuilder) Archived() *AssetBuilder {
	b.IsArchived = true
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `
		INSERT INTO asset (id, space_id, name, asset_type, currency, current_value, is_archived)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.SpaceID, b.Name, b.AssetType, b.Currency, b.CurrentValue, b.IsArchived)
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:           b.ID,
		SpaceID:      b.SpaceID,
		Name:         b.Name,
		AssetType:    b.AssetType,
		Currency:     b.Currency,
		CurrentValue: b.CurrentValue,
		IsArchived:   b.IsArchived,
	}
}

// CreateAsset creates an asset in the space with default values.
//
// Example usage:
//
//	asset := testutil.CreateAsset(t, db, space.ID)
func CreateAsset(t *testing.T, db *sql.DB, spaceID string) model.Asset {
	t.Helper()
	return NewAsset(spaceID).Build(t, db)
}

// CashFlowBuilder provides a fluent interface for creating test cash
// flow events.
//
// Example usage:
//
//	flow := testutil.NewCashFlow(asset.ID).
//	    WithType("capital_call").
//	    WithAmount(50000).
//	    WithDate("2023-01-15").
//	    Build(t, db)
type CashFlowBuilder struct {
	ID      string
	AssetID string
	Type    string
	Amount  float64
	Date    string
	Note    string
}

// NewCashFlow creates a CashFlowBuilder with sensible defaults,
// attached to the given asset.
func NewCashFlow(assetID string) *CashFlowBuilder {
	return &CashFlowBuilder{
		ID:      MakeID(),
		AssetID: assetID,
		Type:    "capital_call",
		Amount:  10000,
		Date:    "2023-01-15",
	}
}

// WithType sets a custom cash flow type.
func (b *CashFlowBuilder) WithType(flowType string) *CashFlowBuilder {
	b.Type = flowType
	return b
}

// WithAmount sets a custom amount.
func (b *CashFlowBuilder) WithAmount(amount float64) *CashFlowBuilder {
	b.Amount = amount
	return b
}

// WithDate sets a custom date in YYYY-MM-DD format.
func (b *CashFlowBuilder) WithDate(date string) *CashFlowBuilder {
	b.Date = date
	return b
}

// WithNote sets a custom note.
func (b *CashFlowBuilder) WithNote(note string) *CashFlowBuilder {
	b.Note = note
	return b
}

// Build creates the cash flow event in the database and returns it.
func (b *CashFlowBuilder) Build(t *testing.T, db *sql.DB) model.CashFlowEvent {
	t.Helper()

	query := `
		INSERT INTO cash_flow (id, asset_id, type, amount, date, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.AssetID, b.Type, b.Amount, b.Date, b.Note)
	if err != nil {
		t.Fatalf("Failed to create test cash flow: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test cash flow date %q: %v", b.Date, err)
	}

	return model.CashFlowEvent{
		ID:      b.ID,
		AssetID: b.AssetID,
		Type:    model.CashFlowType(b.Type),
		Amount:  b.Amount,
		Date:    date,
		Note:    b.Note,
	}
}

// CreateCashFlow creates a cash flow event with the given type, amount
// and date.
//
// Example usage:
//
//	testutil.CreateCashFlow(t, db, asset.ID, "distribution", 25000, "2024-03-01")
func CreateCashFlow(t *testing.T, db *sql.DB, assetID, flowType string, amount float64, date string) model.CashFlowEvent {
	t.Helper()
	return NewCashFlow(assetID).WithType(flowType).WithAmount(amount).WithDate(date).Build(t, db)
}
