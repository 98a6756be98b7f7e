package performance

import "math"

// RoundingPrecision is the scale used when rounding multiples,
// percentages, and monetary values to two decimal places.
const RoundingPrecision = 100

// round2 rounds a value to two decimal places using standard half-up
// rounding. Rounding happens only at output boundaries, never
// mid-computation.
func round2(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// Multiples computes the three standard paid-in multiples from
// aggregated totals and the current valuation:
//
//	TVPI = (distributed + currentValue) / contributed
//	DPI  = distributed / contributed
//	RVPI = currentValue / contributed
//
// When contributed is zero, every multiple is 0 rather than NaN or Inf.
// All results are rounded to two decimal places.
func Multiples(contributed, distributed, currentValue float64) (tvpi, dpi, rvpi float64) {
	if contributed <= 0 {
		return 0, 0, 0
	}

	tvpi = round2((distributed + currentValue) / contributed)
	dpi = round2(distributed / contributed)
	rvpi = round2(currentValue / contributed)
	return tvpi, dpi, rvpi
}
