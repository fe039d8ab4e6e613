package pipelinecalc

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func testChain() []Stage {
	return []Stage{
		{Name: "Sourced", Order: 1, ConversionRate: 50, TatDays: 5},
		{Name: "Screening", Order: 2, ConversionRate: 40, TatDays: 7},
		{Name: "Interview", Order: 3, ConversionRate: 60, TatDays: 10},
		{Name: "Offer", Order: 4, ConversionRate: 80, TatDays: 3},
		{Name: "On Boarded", Order: 5, ConversionRate: 90, TatDays: 10},
	}
}

func requiredCounts(res Result) []int {
	counts := make([]int, 0, len(res.Stages))
	for _, row := range res.Stages {
		if row.RequiredCount != nil {
			counts = append(counts, *row.RequiredCount)
		}
	}
	return counts
}

func TestCalculate(t *testing.T) {
	t.Run(`terminal stage carries the target exactly`, func(t *testing.T) {
		res, err := Calculate(Request{Stages: testChain(), TargetCount: 4})
		require.Nil(t, err)
		counts := requiredCounts(res)
		require.Equal(t, 5, len(counts))
		require.Equal(t, 4, counts[len(counts)-1])
	})

	t.Run(`chain divides by the downstream stage rate with per-stage ceiling`, func(t *testing.T) {
		res, err := Calculate(Request{Stages: testChain(), TargetCount: 4})
		require.Nil(t, err)
		counts := requiredCounts(res)
		// On Boarded: 4
		// Offer: ceil(4 / 0.90) = 5
		// Interview: ceil(5 / 0.80) = 7
		// Screening: ceil(7 / 0.60) = 12
		// Sourced: ceil(12 / 0.40) = 30
		require.Equal(t, []int{30, 12, 7, 5, 4}, counts)
	})

	t.Run(`required counts never increase downstream`, func(t *testing.T) {
		res, err := Calculate(Request{Stages: testChain(), TargetCount: 17})
		require.Nil(t, err)
		counts := requiredCounts(res)
		for i := 1; i < len(counts); i++ {
			require.GreaterOrEqual(t, counts[i-1], counts[i])
		}
	})

	t.Run(`ceiling rounds up to whole candidates`, func(t *testing.T) {
		stages := []Stage{
			{Name: "Sourced", Order: 1, ConversionRate: 50, TatDays: 0},
			{Name: "On Boarded", Order: 2, ConversionRate: 33, TatDays: 0},
		}
		res, err := Calculate(Request{Stages: stages, TargetCount: 10})
		require.Nil(t, err)
		// ceil(10 / 0.33) = 31, not 30
		require.Equal(t, []int{31, 10}, requiredCounts(res))
	})

	t.Run(`a 100 percent stage passes the count through unchanged`, func(t *testing.T) {
		stages := []Stage{
			{Name: "Sourced", Order: 1, ConversionRate: 70, TatDays: 0},
			{Name: "On Boarded", Order: 2, ConversionRate: 100, TatDays: 0},
		}
		res, err := Calculate(Request{Stages: stages, TargetCount: 12})
		require.Nil(t, err)
		require.Equal(t, []int{12, 12}, requiredCounts(res))
	})

	t.Run(`identical input yields identical output`, func(t *testing.T) {
		req := Request{Stages: testChain(), TargetCount: 9}
		first, err := Calculate(req)
		require.Nil(t, err)
		second, err := Calculate(req)
		require.Nil(t, err)
		require.Equal(t, first, second)
	})

	t.Run(`stages given out of order are sorted by order value`, func(t *testing.T) {
		stages := testChain()
		stages[0], stages[4] = stages[4], stages[0]
		res, err := Calculate(Request{Stages: stages, TargetCount: 4})
		require.Nil(t, err)
		require.Equal(t, []int{30, 12, 7, 5, 4}, requiredCounts(res))
	})

	t.Run(`safety buffer inflates the terminal seed`, func(t *testing.T) {
		stages := []Stage{
			{Name: "Sourced", Order: 1, ConversionRate: 50, TatDays: 0},
			{Name: "On Boarded", Order: 2, ConversionRate: 80, TatDays: 0},
		}
		res, err := Calculate(Request{Stages: stages, TargetCount: 10, SafetyBufferPercent: 20})
		require.Nil(t, err)
		// seed = ceil(10 * 1.2) = 12, upstream = ceil(12 / 0.8) = 15
		require.Equal(t, []int{15, 12}, requiredCounts(res))
	})
}

func TestCalculateSpecialStages(t *testing.T) {
	stages := append(testChain(),
		Stage{Name: "Dropped", Order: -1, ConversionRate: 0, TatDays: 0, IsSpecial: true},
		Stage{Name: "On Hold", Order: -1, ConversionRate: 0, TatDays: 0, IsSpecial: true},
	)
	res, err := Calculate(Request{Stages: stages, TargetCount: 4})
	require.Nil(t, err)
	require.Equal(t, 7, len(res.Stages))

	special := 0
	for _, row := range res.Stages {
		if row.IsSpecial {
			special++
			require.Nil(t, row.RequiredCount)
			require.Nil(t, row.NeededByDate)
		} else {
			require.NotNil(t, row.RequiredCount)
		}
	}
	require.Equal(t, 2, special)
}

func TestCalculateDates(t *testing.T) {
	t.Run(`single upstream stage subtracts its own turnaround`, func(t *testing.T) {
		target := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		stages := []Stage{
			{Name: "Sourced", Order: 1, ConversionRate: 50, TatDays: 10},
			{Name: "On Boarded", Order: 2, ConversionRate: 90, TatDays: 4},
		}
		res, err := Calculate(Request{Stages: stages, TargetCount: 5, TargetDate: &target})
		require.Nil(t, err)
		require.Equal(t, target, *res.Stages[1].NeededByDate)
		require.Equal(t, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), *res.Stages[0].NeededByDate)
	})

	t.Run(`dates walk back cumulatively`, func(t *testing.T) {
		target := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		res, err := Calculate(Request{Stages: testChain(), TargetCount: 4, TargetDate: &target})
		require.Nil(t, err)
		// Offer starts Offer.TatDays=3 before the target, Interview 10 before that, etc.
		require.Equal(t, time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC), *res.Stages[3].NeededByDate)
		require.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), *res.Stages[2].NeededByDate)
		require.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), *res.Stages[1].NeededByDate)
		require.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), *res.Stages[0].NeededByDate)
	})

	t.Run(`no target date means no dates at all`, func(t *testing.T) {
		res, err := Calculate(Request{Stages: testChain(), TargetCount: 4})
		require.Nil(t, err)
		for _, row := range res.Stages {
			require.Nil(t, row.NeededByDate)
		}
	})
}

func TestCalculateInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		req  Request
	}{
		{name: "zero target", req: Request{Stages: testChain(), TargetCount: 0}},
		{name: "negative target", req: Request{Stages: testChain(), TargetCount: -3}},
		{name: "empty stage list", req: Request{TargetCount: 5}},
		{name: "only special stages", req: Request{
			Stages:      []Stage{{Name: "Dropped", Order: -1, IsSpecial: true}},
			TargetCount: 5,
		}},
		{name: "zero conversion rate", req: Request{
			Stages:      []Stage{{Name: "Sourced", Order: 1, ConversionRate: 0}},
			TargetCount: 5,
		}},
		{name: "conversion rate above 100", req: Request{
			Stages:      []Stage{{Name: "Sourced", Order: 1, ConversionRate: 101}},
			TargetCount: 5,
		}},
		{name: "duplicate stage order", req: Request{
			Stages: []Stage{
				{Name: "Sourced", Order: 1, ConversionRate: 50},
				{Name: "Screening", Order: 1, ConversionRate: 40},
			},
			TargetCount: 5,
		}},
		{name: "negative turnaround", req: Request{
			Stages:      []Stage{{Name: "Sourced", Order: 1, ConversionRate: 50, TatDays: -1}},
			TargetCount: 5,
		}},
		{name: "negative safety buffer", req: Request{
			Stages:              testChain(),
			TargetCount:         5,
			SafetyBufferPercent: -10,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.req)
			require.NotNil(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestCalcMetrics(t *testing.T) {
	res, err := Calculate(Request{Stages: testChain(), TargetCount: 4})
	require.Nil(t, err)
	m := res.Metrics
	require.Equal(t, 35, m.TotalTatDays)
	require.Equal(t, 5, m.StageCount)
	require.InDelta(t, 64.0, m.AverageConversionRate, 0.001)
	// 0.5 * 0.4 * 0.6 * 0.8 * 0.9 = 0.0864
	require.InDelta(t, 8.64, m.OverallConversionRate, 0.001)
	require.InDelta(t, 64.0/35.0*100, m.EfficiencyScore, 0.001)
}
