package performance

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

var solverEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// oneYear is exactly 365.25 days, matching the solver's year convention,
// so round-number rates come out exact after rounding.
const oneYear = time.Duration(365.25 * 24 * float64(time.Hour))

func daysAfter(days int) time.Time {
	return solverEpoch.AddDate(0, 0, days)
}

// TestSolveIRR_SingleRoundTrip tests the canonical case: one capital
// call, one terminal value a year later.
//
// WHY: This is the simplest series with a closed-form answer (50% for
// 100k in, 150k out after one year), so any drift in the year
// convention, the Newton iteration, or the rounding shows up here.
func TestSolveIRR_SingleRoundTrip(t *testing.T) {
	series := []SignedFlow{
		{Date: solverEpoch, Amount: -100000},
		{Date: solverEpoch.Add(oneYear), Amount: 150000},
	}

	irr := SolveIRR(series)
	if irr == nil {
		t.Fatal("SolveIRR() returned nil, expected a rate")
	}
	if *irr != 50.0 {
		t.Errorf("Expected IRR 50.00, got %v", *irr)
	}
}

// TestSolveIRR_DistributionExceedsValue covers a realized position:
// 50k called, 80k distributed after two years, nothing residual.
func TestSolveIRR_DistributionExceedsValue(t *testing.T) {
	series := []SignedFlow{
		{Date: daysAfter(0), Amount: -50000},
		{Date: daysAfter(730), Amount: 80000},
	}

	irr := SolveIRR(series)
	if irr == nil {
		t.Fatal("SolveIRR() returned nil, expected a rate")
	}
	// (1+r)^2 = 1.6 gives roughly 26.5% annualized.
	if math.Abs(*irr-26.49) > 0.1 {
		t.Errorf("Expected IRR near 26.49, got %v", *irr)
	}
}

// TestSolveIRR_InsufficientData tests the short-circuit preconditions.
//
// WHY: nil is the documented "undeterminable" outcome, not an error.
// These series structurally cannot have an internal rate of return.
func TestSolveIRR_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		series []SignedFlow
	}{
		{
			name:   "empty series",
			series: nil,
		},
		{
			name: "single entry",
			series: []SignedFlow{
				{Date: daysAfter(0), Amount: -100000},
			},
		},
		{
			name: "all outflows",
			series: []SignedFlow{
				{Date: daysAfter(0), Amount: -100000},
				{Date: daysAfter(365), Amount: -50000},
			},
		},
		{
			name: "all inflows",
			series: []SignedFlow{
				{Date: daysAfter(0), Amount: 100000},
				{Date: daysAfter(365), Amount: 50000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if irr := SolveIRR(tt.series); irr != nil {
				t.Errorf("Expected nil IRR, got %v", *irr)
			}
		})
	}
}

// TestSolveIRR_SingleSignProperty generates random series whose flows
// all share one sign and asserts the solver always declines them.
func TestSolveIRR_SingleSignProperty(t *testing.T) {
	//nolint:gosec // G404: deterministic pseudo-random test data
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		sign := 1.0
		if rng.Intn(2) == 0 {
			sign = -1.0
		}

		length := 2 + rng.Intn(8)
		series := make([]SignedFlow, length)
		for j := range series {
			series[j] = SignedFlow{
				Date:   daysAfter(rng.Intn(3650)),
				Amount: sign * (1 + rng.Float64()*100000),
			}
		}

		if irr := SolveIRR(series); irr != nil {
			t.Fatalf("series %d: expected nil IRR for single-sign series, got %v", i, *irr)
		}
	}
}

// TestSolveIRR_ReturnedRateIsRoot verifies that for well-behaved series
// the returned rate is a genuine root of the NPV function.
//
// WHY: A solver bug could converge to a stationary point that is not a
// root, or report the wrong sign convention. Re-evaluating NPV at the
// returned rate catches both. Amounts are unit-scale so the two-decimal
// rounding of the rate keeps the residual well under the tolerance.
func TestSolveIRR_ReturnedRateIsRoot(t *testing.T) {
	tests := []struct {
		name   string
		series []SignedFlow
	}{
		{
			name: "single call single return",
			series: []SignedFlow{
				{Date: daysAfter(0), Amount: -1},
				{Date: daysAfter(365), Amount: 1.5},
			},
		},
		{
			name: "two calls one exit",
			series: []SignedFlow{
				{Date: daysAfter(0), Amount: -1},
				{Date: daysAfter(180), Amount: -0.5},
				{Date: daysAfter(1095), Amount: 2.4},
			},
		},
		{
			name: "interim distribution",
			series: []SignedFlow{
				{Date: daysAfter(0), Amount: -2},
				{Date: daysAfter(400), Amount: 0.6},
				{Date: daysAfter(900), Amount: 2.1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			irr := SolveIRR(tt.series)
			if irr == nil {
				t.Fatal("SolveIRR() returned nil, expected a rate")
			}

			rate := *irr / 100
			t0 := tt.series[0].Date
			var npv float64
			for _, flow := range tt.series {
				years := flow.Date.Sub(t0).Hours() / 24 / daysPerYear
				npv += flow.Amount * math.Pow(1+rate, -years)
			}

			if math.Abs(npv) > 1e-3 {
				t.Errorf("NPV at returned rate %v is %v, expected near zero", *irr, npv)
			}
		})
	}
}

// TestSolveIRR_FallbackOnFlatDerivative forces the fallback path: every
// flow on the same date makes all exponents zero, so the NPV derivative
// is exactly zero and Newton cannot step. The fallback treats the zero
// span as one year and annualizes the simple return over it.
func TestSolveIRR_FallbackOnFlatDerivative(t *testing.T) {
	series := []SignedFlow{
		{Date: daysAfter(0), Amount: -100},
		{Date: daysAfter(0), Amount: 150},
	}

	irr := SolveIRR(series)
	if irr == nil {
		t.Fatal("SolveIRR() returned nil, expected fallback rate")
	}
	// simpleReturn = 150/100 - 1 = 0.5, zero span substituted with 1 year.
	if *irr != 50.0 {
		t.Errorf("Expected fallback IRR 50.00, got %v", *irr)
	}
}

// TestSolveIRR_FallbackAnnualizesTrueSpan checks the fallback horizon:
// only a zero span is swapped for one year, a half-year span compounds
// over its real length. The extreme payoff drives Newton past the
// divergence ceiling, so the fallback resolves the rate.
func TestSolveIRR_FallbackAnnualizesTrueSpan(t *testing.T) {
	series := []SignedFlow{
		{Date: daysAfter(0), Amount: -100},
		{Date: daysAfter(183), Amount: 100000},
	}

	irr := SolveIRR(series)
	if irr == nil {
		t.Fatal("SolveIRR() returned nil, expected fallback rate")
	}
	// Stretched to a full year the 1000x simple return would cap the
	// rate at 99900%; compounding over the true half-year span must
	// land well above that.
	if *irr <= 99900 {
		t.Errorf("SolveIRR() = %v, expected > 99900 for a half-year span", *irr)
	}
}

// TestSolveIRR_DoesNotMutateInput ensures the caller's slice keeps its
// original order after solving, since the solver sorts internally.
func TestSolveIRR_DoesNotMutateInput(t *testing.T) {
	series := []SignedFlow{
		{Date: daysAfter(730), Amount: 80000},
		{Date: daysAfter(0), Amount: -50000},
	}

	SolveIRR(series)

	if !series[0].Date.Equal(daysAfter(730)) || series[0].Amount != 80000 {
		t.Errorf("Input slice was reordered: %+v", series)
	}
}

// TestSolveIRR_UnsortedInput verifies ordering happens inside the
// solver: shuffled input must produce the same rate as sorted input.
func TestSolveIRR_UnsortedInput(t *testing.T) {
	sorted := []SignedFlow{
		{Date: daysAfter(0), Amount: -50000},
		{Date: daysAfter(400), Amount: 20000},
		{Date: daysAfter(730), Amount: 60000},
	}
	shuffled := []SignedFlow{sorted[2], sorted[0], sorted[1]}

	a := SolveIRR(sorted)
	b := SolveIRR(shuffled)

	if a == nil || b == nil {
		t.Fatal("Expected non-nil IRR for both orderings")
	}
	if *a != *b {
		t.Errorf("Order-dependent result: sorted %v, shuffled %v", *a, *b)
	}
}
