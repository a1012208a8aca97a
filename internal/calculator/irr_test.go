package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AnnualizedIRR(t *testing.T) {
	t.Run("single payment with 10% monthly return", func(t *testing.T) {
		// 100 out, 110 back one month later: monthly rate 0.10
		out := AnnualizedIRR(100, []float64{110})
		require.NotNil(t, out)
		require.InDelta(t, math.Pow(1.1, 12)-1, *out, 1e-6)
	})

	t.Run("breakeven series solves to zero", func(t *testing.T) {
		out := AnnualizedIRR(100, []float64{100})
		require.NotNil(t, out)
		require.InDelta(t, 0.0, *out, 1e-6)
	})

	t.Run("spread payments recover a positive rate", func(t *testing.T) {
		out := AnnualizedIRR(100, []float64{40, 40, 40})
		require.NotNil(t, out)
		require.Greater(t, *out, 0.0)
	})

	t.Run("payments below spend give a negative rate", func(t *testing.T) {
		out := AnnualizedIRR(100, []float64{30, 30})
		require.NotNil(t, out)
		require.Less(t, *out, 0.0)
	})

	t.Run("no payments has no solvable rate", func(t *testing.T) {
		out := AnnualizedIRR(100, nil)
		require.Nil(t, out)
	})

	t.Run("all zero series has no solvable rate", func(t *testing.T) {
		out := AnnualizedIRR(0, []float64{0, 0, 0})
		require.Nil(t, out)
	})
}
