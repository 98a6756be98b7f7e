package performance

import (
	"math"
	"slices"
)

// Solver tuning. The iteration cap and divergence band bound the total
// work per call to O(maxIterations) arithmetic steps regardless of how
// pathological the cash-flow pattern is.
const (
	initialRate    = 0.10  // 10% starting guess, sensible for PE patterns
	maxIterations  = 100   // hard bound on Newton-Raphson steps
	derivativeMin  = 1e-10 // below this the Newton step is unsafe
	convergenceTol = 1e-5  // |newRate - rate| at which we accept the root
	rateFloor      = -0.99 // -99% per year
	rateCeil       = 10.0  // +1000% per year
	daysPerYear    = 365.25
)

// SolveIRR computes the annualized internal rate of return of a signed,
// dated cash-flow series using Newton-Raphson with a bounded-divergence
// guard and a deterministic fallback. The result is a percentage (15.5
// means 15.5%) rounded to two decimal places, or nil when no rate can
// be determined.
//
// Calling convention: a position's terminal value must already be
// appended by the caller as a positive flow dated "now" — see Compute.
// The solver itself only sees the series it is given.
//
// nil is returned when the series has fewer than two entries, when all
// amounts share one sign (no investment-then-return structure), or when
// the fallback finds nothing invested. Non-convergence never produces
// an error: it resolves through the fallback below.
func SolveIRR(series []SignedFlow) *float64 {
	if len(series) < 2 {
		return nil
	}

	hasOutflow, hasInflow := false, false
	for _, flow := range series {
		if flow.Amount < 0 {
			hasOutflow = true
		}
		if flow.Amount > 0 {
			hasInflow = true
		}
	}
	if !hasOutflow || !hasInflow {
		return nil
	}

	// Work on a sorted copy: callers' slices are never reordered.
	sorted := slices.Clone(series)
	slices.SortStableFunc(sorted, func(a, b SignedFlow) int {
		return a.Date.Compare(b.Date)
	})

	t0 := sorted[0].Date
	years := make([]float64, len(sorted))
	for i, flow := range sorted {
		years[i] = flow.Date.Sub(t0).Hours() / 24 / daysPerYear
	}

	rate := initialRate
	for i := 0; i < maxIterations; i++ {
		var npv, dnpv float64
		for j, flow := range sorted {
			discounted := flow.Amount * math.Pow(1+rate, -years[j])
			npv += discounted
			dnpv += -years[j] * discounted / (1 + rate)
		}

		if math.Abs(dnpv) < derivativeMin {
			break // derivative too flat to step safely
		}

		newRate := rate - npv/dnpv
		if math.Abs(newRate-rate) < convergenceTol {
			result := math.Round(newRate*10000) / 100
			return &result
		}
		rate = newRate

		if rate < rateFloor || rate > rateCeil {
			break // runaway iteration, resolve via fallback
		}
	}

	return fallbackIRR(sorted, years)
}

// fallbackIRR annualizes the simple money-in/money-out return over the
// span to the latest cash flow. A zero span (all flows on one date)
// is treated as one year; shorter non-zero spans annualize as-is. It
// always yields an economically meaningful number when anything was
// invested, and nil otherwise.
func fallbackIRR(sorted []SignedFlow, years []float64) *float64 {
	var totalInvested, totalReturned float64
	for _, flow := range sorted {
		if flow.Amount < 0 {
			totalInvested += -flow.Amount
		} else {
			totalReturned += flow.Amount
		}
	}
	if totalInvested == 0 {
		return nil
	}

	simpleReturn := totalReturned/totalInvested - 1

	span := years[len(years)-1]
	if span == 0 {
		span = 1
	}

	annualized := math.Pow(1+simpleReturn, 1/span) - 1
	result := math.Round(annualized*10000) / 100
	return &result
}
