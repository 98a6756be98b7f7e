package performance

import (
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// Aggregate folds per-asset performance into portfolio-level totals and
// a portfolio IRR as of the given instant.
//
// The portfolio IRR models the whole portfolio as a single pooled
// investment vehicle: one signed series built from every asset's raw
// cash flows plus one terminal entry per asset that still carries
// value, solved once. This is a deliberate design choice — it is not an
// approximation of weighted per-asset IRRs, and callers comparing the
// two should expect them to differ.
//
// Assets have no data dependency on each other, so this fold may run
// per-asset work in any order; the function itself stays sequential and
// deterministic.
func Aggregate(assets []model.AssetPosition, asOf time.Time) model.PortfolioSummary {
	summary := model.PortfolioSummary{
		AssetCount: len(assets),
		Assets:     make([]model.AssetPerformance, 0, len(assets)),
	}

	var pooled []SignedFlow
	var contributed, distributed float64

	for _, asset := range assets {
		result := Compute(asset, asOf)
		summary.Assets = append(summary.Assets, model.AssetPerformance{
			AssetID:           asset.ID,
			Name:              asset.Name,
			Currency:          asset.Currency,
			CurrentValue:      asset.CurrentValue,
			PerformanceResult: result,
		})

		c := Classify(asset.Events)
		contributed += c.Contributed
		distributed += c.Distributed
		summary.TotalFees += c.Fees
		summary.TotalCurrentValue += asset.CurrentValue
		summary.TotalUnrealizedGainLoss += asset.CurrentValue - (c.Contributed - c.Distributed)

		pooled = append(pooled, c.SignedSeries...)
		if asset.CurrentValue > 0 {
			pooled = append(pooled, SignedFlow{Date: asOf, Amount: asset.CurrentValue})
		}
	}

	summary.TotalContributed = round2(contributed)
	summary.TotalDistributed = round2(distributed)
	summary.TotalFees = round2(summary.TotalFees)
	summary.TotalCurrentValue = round2(summary.TotalCurrentValue)
	summary.TotalUnrealizedGainLoss = round2(summary.TotalUnrealizedGainLoss)

	if contributed > 0 {
		summary.PortfolioTVPI = round2((distributed + summary.TotalCurrentValue) / contributed)
		summary.PortfolioDPI = round2(distributed / contributed)
	}

	summary.PortfolioIRR = SolveIRR(pooled)

	return summary
}
