package api

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testContextWithQuery(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/companies/1/cashflows"+query, nil)
	return c
}

func Test_churnParam(t *testing.T) {
	t.Run("absent param means no projection", func(t *testing.T) {
		churn, err := churnParam(testContextWithQuery(""))
		require.NoError(t, err)
		require.Nil(t, churn)
	})

	t.Run("valid churn parses", func(t *testing.T) {
		churn, err := churnParam(testContextWithQuery("?churn=0.15"))
		require.NoError(t, err)
		require.NotNil(t, churn)
		require.Equal(t, 0.15, *churn)
	})

	t.Run("churn of one is rejected", func(t *testing.T) {
		_, err := churnParam(testContextWithQuery("?churn=1"))
		require.Error(t, err)
	})

	t.Run("negative churn is rejected", func(t *testing.T) {
		_, err := churnParam(testContextWithQuery("?churn=-0.1"))
		require.Error(t, err)
	})

	t.Run("non-numeric churn is rejected", func(t *testing.T) {
		_, err := churnParam(testContextWithQuery("?churn=abc"))
		require.Error(t, err)
	})
}

func Test_cohortToJson(t *testing.T) {
	t.Run("unfunded cohort has null funded block", func(t *testing.T) {
		out := cohortToJson(domain.Cohort{
			CompanyID:   7,
			CohortMonth: util.NewDate(2024, 1, 1),
			Spend:       1000,
			Customers:   []string{"c1"},
			Periods: []domain.Period{
				{Index: 0, Month: util.NewDate(2024, 1, 1), Payment: 100, CumulativePayment: 100},
			},
			CumulativePayment: 100,
		})

		require.Nil(t, out.Funded)
		require.Equal(t, "2024-01-01", out.CohortMonth)
		require.Equal(t, "2024-01-01", out.Periods[0].Month)
	})

	t.Run("funded cohort carries the collection series", func(t *testing.T) {
		irr := 0.42
		out := cohortToJson(domain.Cohort{
			CompanyID:   7,
			CohortMonth: util.NewDate(2024, 1, 1),
			Spend:       1000,
			Funded: &domain.FundedCohort{
				TradeID:           3,
				SharingPercentage: 0.5,
				CashCap:           100,
				Periods: []domain.FundedPeriod{
					{
						Period:              domain.Period{Index: 0, Month: util.NewDate(2024, 1, 1), Payment: 50, CumulativePayment: 50},
						ShareApplied:        0.5,
						Collected:           25,
						CumulativeCollected: 25,
						Predicted:           true,
					},
				},
				CumulativeCollected: 25,
				AnnualizedIRR:       &irr,
			},
		})

		require.NotNil(t, out.Funded)
		require.Equal(t, int32(3), out.Funded.TradeID)
		require.Len(t, out.Funded.Periods, 1)
		require.True(t, out.Funded.Periods[0].Predicted)
		require.Equal(t, 25.0, out.Funded.Periods[0].Collected)
		require.Equal(t, 0.42, *out.Funded.AnnualizedIRR)
	})
}
