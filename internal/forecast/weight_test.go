package forecast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"poultryfarm/backend/internal/domain/models"
)

func feedForPopulation(t *testing.T, population int) []models.FeedForecastEntry {
	t.Helper()
	feed, err := FeedForecast(population)
	require.NoError(t, err)
	return feed
}

func TestWeightForecast_MilestoneDays(t *testing.T) {
	entries, err := WeightForecast(40, 1000, feedForPopulation(t, 1000))
	require.NoError(t, err)

	expected := []string{"Day 1", "Day 3", "Day 6", "Day 9", "Day 12", "Day 15", "Day 18", "Day 21", "Day 24", "Day 27", "Day 30"}
	require.Len(t, entries, len(expected))
	for i, entry := range entries {
		require.Equal(t, expected[i], entry.Day)
		require.Equal(t, "kg", entry.Unit)
	}
}

func TestWeightForecast_MonotonicGrowth(t *testing.T) {
	entries, err := WeightForecast(40, 500, feedForPopulation(t, 500))
	require.NoError(t, err)

	prevGrams := 0
	prevKilos := 0.0
	for _, entry := range entries {
		require.GreaterOrEqual(t, entry.AverageBirdWeightGrams, prevGrams)
		require.GreaterOrEqual(t, entry.TotalFlockWeightKg, prevKilos)
		prevGrams = entry.AverageBirdWeightGrams
		prevKilos = entry.TotalFlockWeightKg
	}
}

func TestWeightForecast_DayOne(t *testing.T) {
	entries, err := WeightForecast(40, 1000, feedForPopulation(t, 1000))
	require.NoError(t, err)

	// Day 1: 40 g start plus 35 g intake at FCR 1.3.
	wantGrams := 40 + 35.0/1.3
	require.InDelta(t, 1.3, entries[0].FCRUsed, 1e-9)
	require.Equal(t, 66, entries[0].AverageBirdWeightGrams)
	require.InDelta(t, round2(wantGrams), entries[0].TotalFlockWeightKg, 1e-9)
}

func TestWeightForecast_FCRSteps(t *testing.T) {
	cases := map[int]float64{1: 1.3, 5: 1.3, 6: 1.4, 12: 1.4, 13: 1.5, 21: 1.5, 22: 1.7, 30: 1.7}
	for day, want := range cases {
		require.InDelta(t, want, fcrForDay(day), 1e-9, "day %d", day)
	}

	entries, err := WeightForecast(40, 100, feedForPopulation(t, 100))
	require.NoError(t, err)
	require.InDelta(t, 1.3, entries[0].FCRUsed, 1e-9)  // Day 1
	require.InDelta(t, 1.4, entries[2].FCRUsed, 1e-9)  // Day 6
	require.InDelta(t, 1.5, entries[5].FCRUsed, 1e-9)  // Day 15
	require.InDelta(t, 1.7, entries[10].FCRUsed, 1e-9) // Day 30
}

func TestWeightForecast_MissingFeedDay(t *testing.T) {
	feed := feedForPopulation(t, 1000)
	truncated := feed[:15]

	_, err := WeightForecast(40, 1000, truncated)
	require.Error(t, err)
}

func TestWeightForecast_InvalidInputs(t *testing.T) {
	feed := feedForPopulation(t, 1000)

	_, err := WeightForecast(0, 1000, feed)
	require.ErrorIs(t, err, ErrInvalidStartWeight)

	_, err = WeightForecast(-5, 1000, feed)
	require.ErrorIs(t, err, ErrInvalidStartWeight)

	_, err = WeightForecast(40, -1, feed)
	require.ErrorIs(t, err, ErrInvalidPopulation)
}
