package model

import "time"

// PerformanceResult holds the computed performance metrics for a single
// asset position. All monetary values are rounded to two decimal places;
// the multiples and percentages are rounded at the output boundary only.
// IRR is nil when it cannot be determined (fewer than two flows, flows
// all of one sign, or a zero-invested fallback) — callers must treat a
// nil IRR as "undeterminable", not as an error.
type PerformanceResult struct {
	TotalContributed          float64    `json:"totalContributed"`
	TotalDistributed          float64    `json:"totalDistributed"`
	TotalFees                 float64    `json:"totalFees"`
	NetContributed            float64    `json:"netContributed"` // gross cash committed including fees paid
	TVPIMultiple              float64    `json:"tvpiMultiple"`
	DPIMultiple               float64    `json:"dpiMultiple"`
	RVPIMultiple              float64    `json:"rvpiMultiple"`
	IRR                       *float64   `json:"irr"` // annualized, percentage
	UnrealizedGainLoss        float64    `json:"unrealizedGainLoss"`
	UnrealizedGainLossPercent float64    `json:"unrealizedGainLossPercent"`
	CashFlowCount             int        `json:"cashFlowCount"`
	FirstCashFlowDate         *time.Time `json:"firstCashFlowDate"`
	LastCashFlowDate          *time.Time `json:"lastCashFlowDate"`
}

// AssetPerformance pairs a PerformanceResult with asset identity for
// API responses and portfolio breakdowns.
type AssetPerformance struct {
	AssetID      string  `json:"assetId"`
	Name         string  `json:"name"`
	Currency     string  `json:"currency"`
	CurrentValue float64 `json:"currentValue"`
	PerformanceResult
}

// PortfolioSummary aggregates performance across all qualifying assets
// in a space. PortfolioIRR is computed over the pooled cash flows of
// every asset (single-vehicle model), not an average of per-asset IRRs.
type PortfolioSummary struct {
	TotalCurrentValue       float64            `json:"totalCurrentValue"`
	TotalContributed        float64            `json:"totalContributed"`
	TotalDistributed        float64            `json:"totalDistributed"`
	TotalFees               float64            `json:"totalFees"`
	TotalUnrealizedGainLoss float64            `json:"totalUnrealizedGainLoss"`
	PortfolioTVPI           float64            `json:"portfolioTVPI"`
	PortfolioDPI            float64            `json:"portfolioDPI"`
	PortfolioIRR            *float64           `json:"portfolioIRR"`
	AssetCount              int                `json:"assetCount"`
	Assets                  []AssetPerformance `json:"assets"`
}
