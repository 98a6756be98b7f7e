package model

import "time"

// PortfolioSnapshot represents a pre-calculated daily portfolio
// performance state for a space. Stored in the portfolio_snapshot
// table and refreshed by the scheduled snapshot job, it allows history
// queries without recomputing from raw cash flows on every request.
type PortfolioSnapshot struct {
	ID                string    // Primary key
	SpaceID           string    // Space this snapshot belongs to
	Date              time.Time // Snapshot date
	TotalCurrentValue float64   // Sum of asset valuations on this date
	TotalContributed  float64   // Capital called across all assets
	TotalDistributed  float64   // Distributions net of recallables
	TotalFees         float64   // Management fees and carry
	TVPI              float64   // Pooled total value to paid-in
	DPI               float64   // Pooled distributions to paid-in
	IRR               *float64  // Pooled IRR, nil when undeterminable
	AssetCount        int       // Assets included in the snapshot
	CalculatedAt      time.Time // When this record was calculated
}
