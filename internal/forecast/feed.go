package forecast

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"poultryfarm/backend/internal/domain/models"
)

// ErrInvalidPopulation indicates a negative flock population.
var ErrInvalidPopulation = errors.New("population must be zero or positive")

// round2 rounds to two decimal places, half away from zero. The choice of
// rounding mode is load-bearing for the forecast contract and is pinned
// by tests.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FeedForecast expands the feed curve into a 30-entry daily plan for the
// given population. The result is a pure function of the population: the
// same input always yields the identical sequence.
func FeedForecast(population int) ([]models.FeedForecastEntry, error) {
	if population < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPopulation, population)
	}

	entries := make([]models.FeedForecastEntry, 0, CycleDays)
	for day := 1; day <= CycleDays; day++ {
		band, err := BandForDay(day)
		if err != nil {
			return nil, err
		}

		entries = append(entries, models.FeedForecastEntry{
			Day:          day,
			FeedType:     band.Stage,
			GramsPerBird: band.GramsPerBird,
			TargetKilos:  round2(band.GramsPerBird * float64(population) / 1000.0),
		})
	}

	return entries, nil
}
