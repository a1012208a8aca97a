package calculator

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_ComputeCompanyCashflows(t *testing.T) {
	jan := util.NewDate(2024, 1, 1)
	feb := util.NewDate(2024, 2, 1)

	t.Run("funded cohort runs threshold, cap and irr end to end", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: jan, Amount: 1000},
			},
			Trades: []domain.TradeRecord{
				{TradeID: 3, CohortMonth: jan, SharingPercentage: 0.5, CashCap: 100},
			},
			Payments: []domain.PaymentRecord{
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 50},
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 2, 10), CohortMonth: jan, Amount: 200},
				{CustomerID: "c2", PaymentDate: util.NewDate(2024, 3, 10), CohortMonth: jan, Amount: 500},
			},
			Thresholds: []domain.ThresholdRecord{
				{PaymentPeriodMonth: 0, MinimumPaymentPercent: 0.10},
			},
		}

		out, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)
		require.Len(t, out, 1)

		cohort := out[0]
		require.Equal(t, int32(7), cohort.CompanyID)
		require.Equal(t, jan, cohort.CohortMonth)
		require.Equal(t, []string{"c1", "c2"}, cohort.Customers)
		require.Equal(t, 750.0, cohort.CumulativePayment)
		require.True(t, cohort.IsFunded())

		funded := cohort.Funded
		require.Equal(t, int32(3), funded.TradeID)
		require.Len(t, funded.Periods, 3)

		// period 0 breaches the 10% threshold: full share, 50 collected
		require.True(t, funded.Periods[0].ThresholdFailed)
		require.Equal(t, 1.0, funded.Periods[0].ShareApplied)
		require.Equal(t, 50.0, funded.Periods[0].Collected)
		require.False(t, funded.Periods[0].Capped)

		// period 1 clips to the remaining headroom and caps out
		require.Equal(t, 50.0, funded.Periods[1].Collected)
		require.Equal(t, 100.0, funded.Periods[1].CumulativeCollected)
		require.True(t, funded.Periods[1].Capped)

		// period 2 collects nothing
		require.Equal(t, 0.0, funded.Periods[2].Collected)

		require.Equal(t, 100.0, funded.CumulativeCollected)
		require.True(t, funded.Capped)
		require.NotNil(t, funded.AnnualizedIRR)
	})

	t.Run("cohort without a trade tracks payments but never collects", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: jan, Amount: 500},
			},
			Payments: []domain.PaymentRecord{
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 75},
			},
		}

		out, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.False(t, out[0].IsFunded())
		require.Nil(t, out[0].Funded)
		require.Equal(t, 75.0, out[0].CumulativePayment)
	})

	t.Run("cohort with spend but no payments yields zero periods", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: jan, Amount: 500},
			},
			Trades: []domain.TradeRecord{
				{TradeID: 3, CohortMonth: jan, SharingPercentage: 0.5, CashCap: 100},
			},
		}

		out, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Empty(t, out[0].Periods)
		require.Equal(t, 0.0, out[0].CumulativePayment)
		require.True(t, out[0].IsFunded())
		require.Empty(t, out[0].Funded.Periods)
		require.False(t, out[0].Funded.Capped)
		require.Nil(t, out[0].Funded.AnnualizedIRR)
	})

	t.Run("trade without a matching spend fails", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Trades: []domain.TradeRecord{
				{TradeID: 3, CohortMonth: jan, SharingPercentage: 0.5, CashCap: 100},
			},
		}

		_, err := ComputeCompanyCashflows(in)
		require.ErrorIs(t, err, ErrMissingCohortSpend)
	})

	t.Run("payment without a matching spend fails", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Payments: []domain.PaymentRecord{
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 75},
			},
		}

		_, err := ComputeCompanyCashflows(in)
		require.ErrorIs(t, err, ErrMissingCohortSpend)
	})

	t.Run("zero spend on a funded cohort with payments fails", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: jan, Amount: 0},
			},
			Trades: []domain.TradeRecord{
				{TradeID: 3, CohortMonth: jan, SharingPercentage: 0.5, CashCap: 100},
			},
			Payments: []domain.PaymentRecord{
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 75},
			},
		}

		_, err := ComputeCompanyCashflows(in)
		require.ErrorIs(t, err, ErrZeroSpend)
	})

	t.Run("cohorts come back sorted by cohort month", func(t *testing.T) {
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: feb, Amount: 200},
				{CohortMonth: jan, Amount: 100},
			},
		}

		out, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, jan, out[0].CohortMonth)
		require.Equal(t, feb, out[1].CohortMonth)
	})

	t.Run("identical inputs produce identical output", func(t *testing.T) {
		churn := 0.10
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: jan, Amount: 1000},
				{CohortMonth: feb, Amount: 500},
			},
			Trades: []domain.TradeRecord{
				{TradeID: 3, CohortMonth: jan, SharingPercentage: 0.35, CashCap: 900},
			},
			Payments: []domain.PaymentRecord{
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 120},
				{CustomerID: "c2", PaymentDate: util.NewDate(2024, 2, 15), CohortMonth: jan, Amount: 90},
				{CustomerID: "c3", PaymentDate: util.NewDate(2024, 2, 20), CohortMonth: feb, Amount: 60},
			},
			Thresholds: []domain.ThresholdRecord{
				{PaymentPeriodMonth: 0, MinimumPaymentPercent: 0.05},
			},
			Churn: &churn,
		}

		first, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)
		second, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("churn projection extends funded cohorts only", func(t *testing.T) {
		churn := 0.10
		in := CompanyRecords{
			CompanyID: 7,
			Spends: []domain.SpendRecord{
				{CohortMonth: jan, Amount: 1000},
				{CohortMonth: feb, Amount: 500},
			},
			Trades: []domain.TradeRecord{
				{TradeID: 3, CohortMonth: jan, SharingPercentage: 0.35, CashCap: 1_000_000},
			},
			Payments: []domain.PaymentRecord{
				{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 120},
				{CustomerID: "c3", PaymentDate: util.NewDate(2024, 2, 20), CohortMonth: feb, Amount: 60},
			},
			Churn: &churn,
		}

		out, err := ComputeCompanyCashflows(in)
		require.NoError(t, err)
		require.Len(t, out, 2)

		funded := out[0].Funded
		require.NotNil(t, funded)
		require.Len(t, funded.Periods, PredictionHorizonPeriods)
		require.False(t, funded.Periods[0].Predicted)
		require.True(t, funded.Periods[1].Predicted)
		require.InDelta(t, 108.0, funded.Periods[1].Payment, 1e-9)

		// the unfunded feb cohort keeps its observed series only
		require.Nil(t, out[1].Funded)
		require.Len(t, out[1].Periods, 1)
	})
}
