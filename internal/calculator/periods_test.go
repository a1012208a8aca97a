package calculator

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_aggregatePeriods(t *testing.T) {
	t.Run("skipped calendar months compress into consecutive indexes", func(t *testing.T) {
		// payments land in jan, feb and apr; march saw nothing and
		// must not appear as a zero period
		out := aggregatePeriods([]domain.PaymentRecord{
			{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 15), Amount: 100},
			{CustomerID: "c2", PaymentDate: util.NewDate(2024, 1, 20), Amount: 50},
			{CustomerID: "c1", PaymentDate: util.NewDate(2024, 2, 10), Amount: 80},
			{CustomerID: "c1", PaymentDate: util.NewDate(2024, 4, 1), Amount: 40},
		})

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Period{
					{Index: 0, Month: util.NewDate(2024, 1, 1), Payment: 150, CumulativePayment: 150},
					{Index: 1, Month: util.NewDate(2024, 2, 1), Payment: 80, CumulativePayment: 230},
					{Index: 2, Month: util.NewDate(2024, 4, 1), Payment: 40, CumulativePayment: 270},
				},
				out,
			),
		)
	})

	t.Run("no payments yields no periods", func(t *testing.T) {
		out := aggregatePeriods(nil)
		require.Empty(t, out)
	})

	t.Run("unordered payments still bucket chronologically", func(t *testing.T) {
		out := aggregatePeriods([]domain.PaymentRecord{
			{CustomerID: "c1", PaymentDate: util.NewDate(2024, 3, 5), Amount: 10},
			{CustomerID: "c1", PaymentDate: util.NewDate(2024, 1, 5), Amount: 30},
		})

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Period{
					{Index: 0, Month: util.NewDate(2024, 1, 1), Payment: 30, CumulativePayment: 30},
					{Index: 1, Month: util.NewDate(2024, 3, 1), Payment: 10, CumulativePayment: 40},
				},
				out,
			),
		)
	})
}

func Test_distinctCustomers(t *testing.T) {
	out := distinctCustomers([]domain.PaymentRecord{
		{CustomerID: "zed", PaymentDate: util.NewDate(2024, 1, 1), Amount: 1},
		{CustomerID: "abe", PaymentDate: util.NewDate(2024, 1, 2), Amount: 1},
		{CustomerID: "zed", PaymentDate: util.NewDate(2024, 2, 1), Amount: 1},
	})

	require.Equal(t, []string{"abe", "zed"}, out)
}
