package performance

import (
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// Compute produces the full performance record for a single asset
// position as of the given instant. asOf dates the synthetic terminal
// flow that represents the current valuation; callers normally pass the
// wall clock, tests pass a fixed instant so results are reproducible.
//
// The terminal flow is appended only when the position still carries
// value, so a fully exited position's IRR reflects its real cash flows
// alone.
func Compute(asset model.AssetPosition, asOf time.Time) model.PerformanceResult {
	c := Classify(asset.Events)

	series := c.SignedSeries
	if asset.CurrentValue > 0 {
		series = append(series, SignedFlow{Date: asOf, Amount: asset.CurrentValue})
	}
	irr := SolveIRR(series)

	tvpi, dpi, rvpi := Multiples(c.Contributed, c.Distributed, asset.CurrentValue)

	// Fees are accumulated as non-negative magnitudes, so net
	// contributed is gross cash committed including fees paid.
	netContributed := c.Contributed + c.Fees

	gainLoss := asset.CurrentValue - (c.Contributed - c.Distributed)
	gainLossPercent := 0.0
	if c.Contributed > 0 {
		gainLossPercent = round2(gainLoss / c.Contributed * 100)
	}

	first, last := eventDateRange(asset.Events)

	return model.PerformanceResult{
		TotalContributed:          round2(c.Contributed),
		TotalDistributed:          round2(c.Distributed),
		TotalFees:                 round2(c.Fees),
		NetContributed:            round2(netContributed),
		TVPIMultiple:              tvpi,
		DPIMultiple:               dpi,
		RVPIMultiple:              rvpi,
		IRR:                       irr,
		UnrealizedGainLoss:        round2(gainLoss),
		UnrealizedGainLossPercent: gainLossPercent,
		CashFlowCount:             len(asset.Events),
		FirstCashFlowDate:         first,
		LastCashFlowDate:          last,
	}
}

// eventDateRange finds the earliest and latest dates among the raw
// (non-synthetic) events. Both are nil when there are no events.
func eventDateRange(events []model.CashFlowEvent) (first, last *time.Time) {
	if len(events) == 0 {
		return nil, nil
	}

	minDate, maxDate := events[0].Date, events[0].Date
	for _, event := range events[1:] {
		if event.Date.Before(minDate) {
			minDate = event.Date
		}
		if event.Date.After(maxDate) {
			maxDate = event.Date
		}
	}
	return &minDate, &maxDate
}
