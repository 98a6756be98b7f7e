// Package performance computes private-markets performance metrics
// (TVPI, DPI, RVPI, IRR) for manually tracked positions. Every function
// in this package is a pure function of its inputs: no persistence, no
// clock access, no mutation of caller-supplied slices.
package performance

import (
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/model"
)

// SignedFlow is a dated cash movement signed from the investor's point
// of view: negative means cash leaving the investor (capital calls,
// management fees), positive means cash returned.
type SignedFlow struct {
	Date   time.Time
	Amount float64
}

// Classification aggregates a cash-flow history into running totals and
// the signed series the IRR solver consumes.
//
// Note the recallable asymmetry: a recallable distribution reduces the
// Distributed total (it claws back a prior inflow) but stays a positive
// entry in SignedSeries, because the dated cash movement at that point
// in time really was money arriving at the investor. The IRR must see
// the literal transfer direction.
type Classification struct {
	Contributed  float64
	Distributed  float64
	Fees         float64
	SignedSeries []SignedFlow
}

// Classify folds a cash-flow history into totals and a signed series.
// Events with an unrecognized type are skipped entirely: they contribute
// nothing to any total and produce no series entry. Classification never
// fails.
func Classify(events []model.CashFlowEvent) Classification {
	c := Classification{
		SignedSeries: make([]SignedFlow, 0, len(events)),
	}

	for _, event := range events {
		switch event.Type {
		case model.CashFlowCapitalCall:
			c.Contributed += event.Amount
			c.SignedSeries = append(c.SignedSeries, SignedFlow{Date: event.Date, Amount: -event.Amount})
		case model.CashFlowDistribution:
			c.Distributed += event.Amount
			c.SignedSeries = append(c.SignedSeries, SignedFlow{Date: event.Date, Amount: event.Amount})
		case model.CashFlowRecallable:
			c.Distributed -= event.Amount
			c.SignedSeries = append(c.SignedSeries, SignedFlow{Date: event.Date, Amount: event.Amount})
		case model.CashFlowManagementFee:
			c.Fees += event.Amount
			c.SignedSeries = append(c.SignedSeries, SignedFlow{Date: event.Date, Amount: -event.Amount})
		case model.CashFlowCarry:
			c.Fees += event.Amount
			c.SignedSeries = append(c.SignedSeries, SignedFlow{Date: event.Date, Amount: event.Amount})
		default:
			// Unknown types are a no-op, not an error.
		}
	}

	return c
}
