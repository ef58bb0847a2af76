package forecast

import (
	"errors"
	"fmt"
	"math"

	"poultryfarm/backend/internal/domain/models"
)

// ErrInvalidStartWeight indicates a non-positive starting chick weight.
var ErrInvalidStartWeight = errors.New("starting weight must be positive")

// fcrForDay is the step function mapping cycle day to feed conversion
// ratio (grams of feed per gram of gain).
func fcrForDay(day int) float64 {
	switch {
	case day <= 5:
		return 1.3
	case day <= 12:
		return 1.4
	case day <= 21:
		return 1.5
	default:
		return 1.7
	}
}

// isMilestoneDay reports whether the simulator emits an entry for the day:
// day 1 plus every third day from 3 through 30.
func isMilestoneDay(day int) bool {
	return day == 1 || day%3 == 0
}

// WeightForecast walks the 30-day cycle converting each day's feed intake
// into weight gain via the FCR step function. The feed sequence must come
// from FeedForecast for the same batch; a missing day is an internal
// consistency error, not bad data.
func WeightForecast(startWeightGrams float64, population int, feed []models.FeedForecastEntry) ([]models.WeightForecastEntry, error) {
	if startWeightGrams <= 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidStartWeight, startWeightGrams)
	}
	if population < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPopulation, population)
	}

	intakeByDay := make(map[int]float64, len(feed))
	for _, entry := range feed {
		intakeByDay[entry.Day] = entry.GramsPerBird
	}

	entries := make([]models.WeightForecastEntry, 0, 11)
	currentWeightGrams := startWeightGrams

	for day := 1; day <= CycleDays; day++ {
		gramsPerBird, ok := intakeByDay[day]
		if !ok {
			return nil, fmt.Errorf("feed forecast has no entry for day %d", day)
		}

		fcr := fcrForDay(day)
		currentWeightGrams += gramsPerBird / fcr

		if !isMilestoneDay(day) {
			continue
		}

		entries = append(entries, models.WeightForecastEntry{
			Day:                    fmt.Sprintf("Day %d", day),
			TotalFlockWeightKg:     round2(currentWeightGrams * float64(population) / 1000.0),
			AverageBirdWeightGrams: int(math.Floor(currentWeightGrams)),
			FCRUsed:                fcr,
			Unit:                   "kg",
		})
	}

	return entries, nil
}
