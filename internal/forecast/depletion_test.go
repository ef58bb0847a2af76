package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"poultryfarm/backend/internal/domain/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(dateLayout, value)
	require.NoError(t, err)
	return parsed
}

func medicationExpense(itemName, category, date string, quantity float64) models.ExpenseRecord {
	return models.ExpenseRecord{
		Category: category,
		ItemName: itemName,
		Quantity: quantity,
		Unit:     "g",
		Date:     date,
	}
}

func TestResolveProfile_TableOrderWins(t *testing.T) {
	// "vetracin vitamin premix" matches both keywords; the earlier,
	// more specific row must win.
	profile := ResolveProfile("Vetracin Vitamin Premix")
	require.Equal(t, "vetracin", profile.Keyword)
	require.InDelta(t, 100.0, profile.DosePerThousand, 1e-9)
	require.Equal(t, DoseScalable, profile.Mode)
}

func TestResolveProfile_Fallback(t *testing.T) {
	profile := ResolveProfile("Mystery Tonic")
	require.Empty(t, profile.Keyword)
	require.Equal(t, DoseScalable, profile.Mode)
	require.InDelta(t, 50.0, profile.DosePerThousand, 1e-9)
	require.Equal(t, "g", profile.Unit)
}

func TestLotFromExpense_Filters(t *testing.T) {
	_, ok := LotFromExpense(medicationExpense("Starter Crumble", "Feeds", "2026-01-05", 25))
	require.False(t, ok, "non-medication category must not build a lot")

	_, ok = LotFromExpense(medicationExpense("Vetracin", "Medicine", "not-a-date", 100))
	require.False(t, ok, "unparseable date must not build a lot")

	_, ok = LotFromExpense(medicationExpense("Vetracin", "Medicine", "2026-01-05", 0))
	require.False(t, ok, "zero quantity must not build a lot")
}

func TestLotFromExpense_PurchaseCountMultiplies(t *testing.T) {
	exp := medicationExpense("Vetracin", "Medicine", "2026-01-05", 500)
	exp.PurchaseCount = 2

	lot, ok := LotFromExpense(exp)
	require.True(t, ok)
	require.InDelta(t, 1000.0, lot.Quantity, 1e-9)
}

func TestDepletionSchedule_VetracinLot(t *testing.T) {
	exp := medicationExpense("Vetracin", "Medicine", "2026-01-05", 1000)
	lot, ok := LotFromExpense(exp)
	require.True(t, ok)

	events, err := DepletionSchedule(1000, mustDate(t, "2026-01-01"), lot)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// Purchased on batch day 5: consumption starts that day, scaled by
	// the day-5 growth factor.
	factor, err := GrowthFactor(5)
	require.NoError(t, err)
	require.Equal(t, 5, events[0].Day)
	require.InDelta(t, round2(100.0*1.0*factor), events[0].AmountConsumed, 1e-9)

	var total float64
	prevDay := 0
	for _, event := range events {
		require.Greater(t, event.Day, prevDay, "days must strictly increase")
		require.LessOrEqual(t, event.Day, DepletionDayCap)
		total += event.AmountConsumed
		prevDay = event.Day
	}
	require.LessOrEqual(t, total, lot.Quantity+0.01)
	require.InDelta(t, lot.Quantity, total, 0.01, "a 1000 g lot is exhausted well before the day cap")
}

func TestDepletionSchedule_NoGapsWithinWindow(t *testing.T) {
	lot, ok := LotFromExpense(medicationExpense("Vitamin Boost", "Vitamins", "2026-01-03", 200))
	require.True(t, ok)

	events, err := DepletionSchedule(1000, mustDate(t, "2026-01-01"), lot)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	for i := 1; i < len(events); i++ {
		require.Equal(t, events[i-1].Day+1, events[i].Day)
	}
}

func TestDepletionSchedule_FixedDoseIgnoresAge(t *testing.T) {
	lot, ok := LotFromExpense(medicationExpense("NCD Vaccine", "Vaccines", "2026-01-02", 500))
	require.True(t, ok)
	require.Equal(t, DoseFixedPerThousand, lot.Profile.Mode)

	events, err := DepletionSchedule(500, mustDate(t, "2026-01-01"), lot)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// Fixed 100 per 1000 birds at population 500: flat 50 per day.
	for _, event := range events[:len(events)-1] {
		require.InDelta(t, 50.0, event.AmountConsumed, 1e-9)
	}
}

func TestDepletionSchedule_PurchaseBeforeBatchStart(t *testing.T) {
	lot, ok := LotFromExpense(medicationExpense("Vetracin", "Medicine", "2025-12-20", 100))
	require.True(t, ok)

	events, err := DepletionSchedule(1000, mustDate(t, "2026-01-01"), lot)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, 1, events[0].Day, "pre-cycle purchases start depleting on day 1")
}

func TestDepletionSchedule_DayCap(t *testing.T) {
	lot, ok := LotFromExpense(medicationExpense("Vetracin", "Medicine", "2026-01-01", 1e9))
	require.True(t, ok)

	events, err := DepletionSchedule(1000, mustDate(t, "2026-01-01"), lot)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, DepletionDayCap, events[len(events)-1].Day)
}

func TestDepletionSchedule_ZeroPopulation(t *testing.T) {
	lot, ok := LotFromExpense(medicationExpense("Vetracin", "Medicine", "2026-01-05", 1000))
	require.True(t, ok)

	events, err := DepletionSchedule(0, mustDate(t, "2026-01-01"), lot)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestGrowthFactor_Floor(t *testing.T) {
	// Day 1 intake is 35/190 of the adult plateau, below the 0.20 floor.
	factor, err := GrowthFactor(1)
	require.NoError(t, err)
	require.InDelta(t, 0.20, factor, 1e-9)

	// Past the curve the plateau holds: factor 1.0.
	factor, err = GrowthFactor(40)
	require.NoError(t, err)
	require.InDelta(t, 1.0, factor, 1e-9)
}
