package calculator

import (
	"cvf/internal/domain"
	"fmt"
	"sort"
)

// CompanyRecords is the full in-memory input for one company's cashflow
// computation. Churn, when set, enables the projection of future periods.
type CompanyRecords struct {
	CompanyID  int32
	Spends     []domain.SpendRecord
	Trades     []domain.TradeRecord
	Payments   []domain.PaymentRecord
	Thresholds []domain.ThresholdRecord
	Churn      *float64
}

// ComputeCompanyCashflows derives the per-cohort cashflow series for one
// company: consolidation by cohort month, period aggregation, the
// collections state machine for cohorts with a trade, optional churn
// projection, and annualized IRR for funded cohorts.
//
// The computation is pure: it holds no state between calls and identical
// inputs produce identical output. Errors abort the whole computation and
// propagate; nothing is retried or silently defaulted.
func ComputeCompanyCashflows(in CompanyRecords) ([]domain.Cohort, error) {
	grouped, err := consolidateCohorts(in.CompanyID, in.Spends, in.Trades, in.Payments)
	if err != nil {
		return nil, fmt.Errorf("failed to consolidate cohorts: %w", err)
	}

	// sparse by design: a period with no rule never breaches
	thresholdByPeriod := map[int]float64{}
	for _, t := range in.Thresholds {
		thresholdByPeriod[t.PaymentPeriodMonth] = t.MinimumPaymentPercent
	}

	cohorts := make([]domain.Cohort, 0, len(grouped))
	for month, records := range grouped {
		periods := aggregatePeriods(records.payments)

		cohort := domain.Cohort{
			CompanyID:   in.CompanyID,
			CohortMonth: month,
			Spend:       records.spend.Amount,
			Customers:   distinctCustomers(records.payments),
			Periods:     periods,
		}
		if len(periods) > 0 {
			cohort.CumulativePayment = periods[len(periods)-1].CumulativePayment
		}

		if records.trade != nil {
			funded, err := computeFundedCohort(cohort, *records.trade, thresholdByPeriod, in.Churn)
			if err != nil {
				return nil, fmt.Errorf("company %d cohort %s: %w", in.CompanyID, month.Format("2006-01"), err)
			}
			cohort.Funded = funded
		}

		cohorts = append(cohorts, cohort)
	}

	sort.Slice(cohorts, func(i, j int) bool {
		return cohorts[i].CohortMonth.Before(cohorts[j].CohortMonth)
	})

	return cohorts, nil
}

func computeFundedCohort(
	cohort domain.Cohort,
	trade domain.TradeRecord,
	thresholds map[int]float64,
	churn *float64,
) (*domain.FundedCohort, error) {
	fundedPeriods, state, err := collectCohort(cohort.Periods, cohort.Spend, trade, thresholds)
	if err != nil {
		return nil, err
	}

	if churn != nil {
		predicted, next, err := projectPeriods(fundedPeriods, state, cohort.Spend, trade, thresholds, *churn)
		if err != nil {
			return nil, err
		}
		state = next
		fundedPeriods = append(fundedPeriods, predicted...)
	}

	funded := &domain.FundedCohort{
		TradeID:             trade.TradeID,
		SharingPercentage:   trade.SharingPercentage,
		CashCap:             trade.CashCap,
		Periods:             fundedPeriods,
		CumulativeCollected: state.cumulativeCollected,
		Capped:              state.capped,
	}
	funded.AnnualizedIRR = AnnualizedIRR(cohort.Spend, funded.GrossPayments())

	return funded, nil
}
