package calculator

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ComputeCompanyMetrics(t *testing.T) {
	t.Run("no cohorts yields zero metrics", func(t *testing.T) {
		out := ComputeCompanyMetrics(nil)
		require.Equal(t, CompanyMetrics{}, out)
	})

	t.Run("portfolio level rollup", func(t *testing.T) {
		jan := util.NewDate(2024, 1, 1)
		feb := util.NewDate(2024, 2, 1)

		cohorts := []domain.Cohort{
			{
				CompanyID:         7,
				CohortMonth:       jan,
				Spend:             1000,
				CumulativePayment: 400,
				Funded: &domain.FundedCohort{
					TradeID: 1,
					Periods: []domain.FundedPeriod{
						{
							Period:          domain.Period{Index: 0, Month: jan, Payment: 100},
							ThresholdFailed: true,
							Collected:       100,
						},
						{
							Period:    domain.Period{Index: 1, Month: feb, Payment: 300},
							Collected: 120,
						},
					},
				},
			},
			{
				CompanyID:         7,
				CohortMonth:       feb,
				Spend:             500,
				CumulativePayment: 100,
			},
		}

		out := ComputeCompanyMetrics(cohorts)

		require.Equal(t, 120.0, out.OwedThisMonth)
		require.Equal(t, 1, out.BreachesCount)
		require.InDelta(t, 500.0/1500.0, out.MOICToDate, 1e-9)
		require.InDelta(t, 250.0, out.LTVEstimate, 1e-9)
		require.InDelta(t, 750.0, out.CACEstimate, 1e-9)
	})

	t.Run("predicted breaches do not count", func(t *testing.T) {
		jan := util.NewDate(2024, 1, 1)
		cohorts := []domain.Cohort{
			{
				CompanyID:   7,
				CohortMonth: jan,
				Spend:       1000,
				Funded: &domain.FundedCohort{
					TradeID: 1,
					Periods: []domain.FundedPeriod{
						{
							Period:          domain.Period{Index: 0, Month: jan, Payment: 10},
							ThresholdFailed: true,
							Predicted:       true,
						},
					},
				},
			},
		}

		out := ComputeCompanyMetrics(cohorts)
		require.Equal(t, 0, out.BreachesCount)
	})
}
