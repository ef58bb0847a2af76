package forecast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedForecast_FullCycle(t *testing.T) {
	entries, err := FeedForecast(1000)
	require.NoError(t, err)
	require.Len(t, entries, 30)

	for i, entry := range entries {
		require.Equal(t, i+1, entry.Day)
		require.Contains(t, []string{StageBooster, StageStarter, StageFinisher}, entry.FeedType)
	}
}

func TestFeedForecast_KnownValues(t *testing.T) {
	entries, err := FeedForecast(1000)
	require.NoError(t, err)
	require.InDelta(t, 35.0, entries[0].GramsPerBird, 1e-9)
	require.InDelta(t, 35.0, entries[0].TargetKilos, 1e-9)

	entries, err = FeedForecast(500)
	require.NoError(t, err)
	require.InDelta(t, 170.0, entries[25].GramsPerBird, 1e-9)
	require.InDelta(t, 85.0, entries[25].TargetKilos, 1e-9)
}

func TestFeedForecast_ZeroPopulation(t *testing.T) {
	entries, err := FeedForecast(0)
	require.NoError(t, err)
	require.Len(t, entries, 30)
	for _, entry := range entries {
		require.Zero(t, entry.TargetKilos)
	}
}

func TestFeedForecast_NegativePopulation(t *testing.T) {
	_, err := FeedForecast(-1)
	require.ErrorIs(t, err, ErrInvalidPopulation)
}

func TestFeedForecast_ScalesLinearly(t *testing.T) {
	entries, err := FeedForecast(1337)
	require.NoError(t, err)
	for _, entry := range entries {
		require.InDelta(t, round2(entry.GramsPerBird*1337/1000.0), entry.TargetKilos, 1e-9)
	}
}

func TestFeedForecast_Idempotent(t *testing.T) {
	first, err := FeedForecast(750)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := FeedForecast(750)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestBandForDay_OutsideCurve(t *testing.T) {
	for _, day := range []int{0, -3, 31} {
		_, err := BandForDay(day)
		require.Error(t, err, "day %d must not resolve to a band", day)
	}
}

func TestFeedCurve_CoversCycleWithoutOverlap(t *testing.T) {
	covered := 0
	for day := 1; day <= CycleDays; day++ {
		matches := 0
		for _, band := range feedCurve {
			if day >= band.FromDay && day <= band.ToDay {
				matches++
			}
		}
		require.Equal(t, 1, matches, "day %d must be covered by exactly one band", day)
		covered++
	}
	require.Equal(t, CycleDays, covered)
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	require.InDelta(t, 0.13, round2(0.125), 1e-9)
	require.InDelta(t, 2.35, round2(2.345), 1e-9)
	require.InDelta(t, 1.0, round2(0.999), 1e-9)
}
