package calculator

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_projectPeriods(t *testing.T) {
	trade := domain.TradeRecord{
		TradeID:           1,
		CohortMonth:       util.NewDate(2024, 1, 1),
		SharingPercentage: 0.5,
		CashCap:           1_000_000,
	}

	observedFrom := func(payment float64) []domain.FundedPeriod {
		return []domain.FundedPeriod{
			{
				Period: domain.Period{
					Index:             0,
					Month:             util.NewDate(2024, 1, 1),
					Payment:           payment,
					CumulativePayment: payment,
				},
				ShareApplied:        0.5,
				Collected:           payment * 0.5,
				CumulativeCollected: payment * 0.5,
			},
		}
	}

	t.Run("first predicted period decays the last observed payment", func(t *testing.T) {
		observed := observedFrom(100)
		state := collectionState{cumulativeCollected: 50}

		out, _, err := projectPeriods(observed, state, 1000, trade, nil, 0.10)
		require.NoError(t, err)

		require.Len(t, out, PredictionHorizonPeriods-1)
		require.True(t, out[0].Predicted)
		require.Equal(t, 1, out[0].Index)
		require.Equal(t, util.NewDate(2024, 2, 1), out[0].Month)
		require.InDelta(t, 90.0, out[0].Payment, 1e-9)
	})

	t.Run("decay compounds across predicted periods", func(t *testing.T) {
		observed := observedFrom(100)

		out, _, err := projectPeriods(observed, collectionState{cumulativeCollected: 50}, 1000, trade, nil, 0.10)
		require.NoError(t, err)

		require.InDelta(t, 81.0, out[1].Payment, 1e-9)
		require.InDelta(t, 72.9, out[2].Payment, 1e-9)
	})

	t.Run("projection stops when the cohort caps out", func(t *testing.T) {
		cappingTrade := trade
		cappingTrade.CashCap = 140 // 50 observed + 45 + 40.5 + clip

		observed := observedFrom(100)
		state := collectionState{cumulativeCollected: 50}

		out, endState, err := projectPeriods(observed, state, 1000, cappingTrade, nil, 0.10)
		require.NoError(t, err)

		require.True(t, endState.capped)
		require.Less(t, len(out), PredictionHorizonPeriods-1)
		last := out[len(out)-1]
		require.True(t, last.Capped)
		require.Equal(t, 140.0, last.CumulativeCollected)
	})

	t.Run("zero churn repeats the last payment to the horizon", func(t *testing.T) {
		observed := observedFrom(100)

		out, _, err := projectPeriods(observed, collectionState{cumulativeCollected: 50}, 1000, trade, nil, 0)
		require.NoError(t, err)

		require.Len(t, out, PredictionHorizonPeriods-1)
		require.Equal(t, 100.0, out[0].Payment)
		require.Equal(t, 100.0, out[len(out)-1].Payment)
		require.Equal(t, PredictionHorizonPeriods-1, out[len(out)-1].Index)
	})

	t.Run("no observed periods means no projection", func(t *testing.T) {
		out, state, err := projectPeriods(nil, collectionState{}, 1000, trade, nil, 0.10)
		require.NoError(t, err)
		require.Nil(t, out)
		require.False(t, state.capped)
	})

	t.Run("already capped state projects nothing", func(t *testing.T) {
		observed := observedFrom(100)
		state := collectionState{cumulativeCollected: 50, capped: true}

		out, _, err := projectPeriods(observed, state, 1000, trade, nil, 0.10)
		require.NoError(t, err)
		require.Empty(t, out)
	})
}
