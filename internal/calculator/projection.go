package calculator

import (
	"cvf/internal/domain"
)

// PredictionHorizonPeriods bounds how far past observed history the churn
// projection extends a cohort's period series.
const PredictionHorizonPeriods = 36

// projectPeriods synthesizes future periods for a funded cohort by decaying
// the preceding period's payment geometrically: payment[i] = payment[i-1] *
// (1 - churn). The decay compounds across consecutive predicted periods. It
// stops at the horizon, or as soon as the cohort caps out (nothing left to
// collect against).
//
// With no observed periods there is no value to anchor the decay, so no
// projection occurs.
func projectPeriods(
	observed []domain.FundedPeriod,
	state collectionState,
	spend float64,
	trade domain.TradeRecord,
	thresholds map[int]float64,
	churn float64,
) ([]domain.FundedPeriod, collectionState, error) {
	if len(observed) == 0 {
		return nil, state, nil
	}

	last := observed[len(observed)-1]
	payment := last.Payment
	month := last.Month
	cumulativePayment := last.CumulativePayment

	predicted := []domain.FundedPeriod{}
	for index := last.Index + 1; index < PredictionHorizonPeriods; index++ {
		if state.capped {
			break
		}

		payment *= 1 - churn
		month = month.AddDate(0, 1, 0)
		cumulativePayment += payment

		period := domain.Period{
			Index:             index,
			Month:             month,
			Payment:           payment,
			CumulativePayment: cumulativePayment,
		}
		fp, next, err := collectPeriod(state, period, spend, trade, thresholds, true)
		if err != nil {
			return nil, state, err
		}
		state = next
		predicted = append(predicted, fp)
	}

	return predicted, state, nil
}
