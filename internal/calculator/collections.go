package calculator

import (
	"cvf/internal/domain"
	"errors"
	"fmt"
)

// ErrZeroSpend indicates a funded cohort with zero acquisition spend. The
// threshold check divides period payments by spend, so funded cohorts must
// carry a positive spend; unfunded cohorts never divide.
var ErrZeroSpend = errors.New("funded cohort has zero spend")

// collectionState is the accumulator threaded through the per-period fold.
// Once capped is set the cohort is terminal: every later period collects 0.
type collectionState struct {
	cumulativeCollected float64
	capped              bool
}

// collectPeriod applies one period's threshold check, sharing rate and cash
// cap clip, returning the emitted funded period and the advanced state.
//
// A threshold breach (payment as a fraction of spend below the period's
// minimum) forces 100% sharing for that period only. The collection is
// clipped to the cap's remaining headroom, and the cohort caps out on the
// period whose clipped collection consumes that headroom exactly.
func collectPeriod(
	state collectionState,
	period domain.Period,
	spend float64,
	trade domain.TradeRecord,
	thresholds map[int]float64,
	predicted bool,
) (domain.FundedPeriod, collectionState, error) {
	out := domain.FundedPeriod{
		Period:              period,
		Predicted:           predicted,
		CumulativeCollected: state.cumulativeCollected,
		Capped:              state.capped,
	}

	if state.capped {
		return out, state, nil
	}

	if spend == 0 {
		return domain.FundedPeriod{}, state, fmt.Errorf("period %d: %w", period.Index, ErrZeroSpend)
	}
	paymentPercentage := period.Payment / spend

	if minimum, ok := thresholds[period.Index]; ok {
		expected := minimum * spend
		out.ThresholdPaymentPercentage = &minimum
		out.ThresholdExpectedPayment = &expected
		out.ThresholdFailed = paymentPercentage < minimum
	}

	share := trade.SharingPercentage
	if out.ThresholdFailed {
		share = 1.0
	}
	out.ShareApplied = share

	rawCollection := share * period.Payment
	headroom := trade.CashCap - state.cumulativeCollected
	if headroom < 0 {
		headroom = 0
	}
	collected := rawCollection
	if collected > headroom {
		collected = headroom
	}

	state.cumulativeCollected += collected
	if collected == headroom {
		state.capped = true
	}

	out.Collected = collected
	out.CumulativeCollected = state.cumulativeCollected
	out.Capped = state.capped

	return out, state, nil
}

// collectCohort folds the collection state machine over a cohort's observed
// period series. Any error aborts the whole cohort; there is no partial
// result.
func collectCohort(
	periods []domain.Period,
	spend float64,
	trade domain.TradeRecord,
	thresholds map[int]float64,
) ([]domain.FundedPeriod, collectionState, error) {
	state := collectionState{}
	funded := make([]domain.FundedPeriod, 0, len(periods))
	for _, period := range periods {
		fp, next, err := collectPeriod(state, period, spend, trade, thresholds, false)
		if err != nil {
			return nil, state, err
		}
		state = next
		funded = append(funded, fp)
	}
	return funded, state, nil
}
