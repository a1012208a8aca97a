package calculator

import (
	"math"
)

const (
	irrLowerBound = -0.9999
	irrUpperBound = 10.0
	irrIterations = 200
)

// AnnualizedIRR computes the annualized internal rate of return for a funded
// cohort: the spend is a single outflow at time zero and the period payments
// are monthly inflows. The monthly rate solving NPV = 0 is found by
// bisection and annualized via (1+r)^12 - 1.
//
// The series is fed gross payment amounts, not investor collections.
//
// Returns nil when no rate exists in the bracket (e.g. no payments, or the
// series never changes sign); an absent IRR is "not computable", not zero.
func AnnualizedIRR(spend float64, payments []float64) *float64 {
	npv := func(rate float64) float64 {
		value := -spend
		discount := 1.0
		for _, payment := range payments {
			discount *= 1 + rate
			value += payment / discount
		}
		return value
	}

	low, high := irrLowerBound, irrUpperBound
	fLow, fHigh := npv(low), npv(high)
	signChange := (fLow < 0 && fHigh > 0) || (fLow > 0 && fHigh < 0)
	if math.IsNaN(fLow) || math.IsNaN(fHigh) || !signChange {
		return nil
	}

	var mid float64
	for i := 0; i < irrIterations; i++ {
		mid = (low + high) / 2
		fMid := npv(mid)
		if fMid == 0 {
			break
		}
		if fLow*fMid < 0 {
			high = mid
		} else {
			low = mid
			fLow = fMid
		}
	}

	annualized := math.Pow(1+mid, 12) - 1
	return &annualized
}
