package forecast

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"poultryfarm/backend/internal/domain/models"
)

// trendThresholdPct is the band around zero inside which per-item usage
// movement is reported as stable.
const trendThresholdPct = 5.0

const monthLayout = "2006-01"

// trendCategory reports whether an expense belongs to the vitamin or
// medication ledgers tracked by the aggregator.
func trendCategory(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "vitamin") || strings.Contains(c, "medic")
}

func expenseQuantity(exp models.ExpenseRecord) float64 {
	if exp.PurchaseCount > 0 {
		return exp.Quantity * exp.PurchaseCount
	}
	return exp.Quantity
}

type usagePoint struct {
	date  time.Time
	point models.HistoricalUsagePoint
}

// VitaminTrends mines completed batches' expense ledgers for per-bird
// usage of each vitamin/medication item and derives a trend per item.
// Items with fewer than two historical points are omitted — one point
// carries no direction. Absent or malformed data degrades to an empty
// result, never an error.
func VitaminTrends(batches []models.Batch) []models.TrendSummary {
	pointsByItem := make(map[string][]usagePoint)

	for _, batch := range batches {
		if !strings.EqualFold(batch.Status, models.BatchStatusCompleted) || batch.StartingPopulation <= 0 {
			continue
		}

		batchDate, err := time.Parse(dateLayout, batch.DateCreated)
		if err != nil {
			continue
		}

		totals := make(map[string]float64)
		for _, exp := range batch.Expenses {
			if !trendCategory(exp.Category) || exp.ItemName == "" {
				continue
			}
			totals[exp.ItemName] += expenseQuantity(exp)
		}

		for item, total := range totals {
			pointsByItem[item] = append(pointsByItem[item], usagePoint{
				date: batchDate,
				point: models.HistoricalUsagePoint{
					BatchDate:   batch.DateCreated,
					Population:  batch.StartingPopulation,
					TotalAmount: total,
					RatePerBird: total / float64(batch.StartingPopulation),
				},
			})
		}
	}

	summaries := make([]models.TrendSummary, 0, len(pointsByItem))
	for item, points := range pointsByItem {
		if len(points) < 2 {
			continue
		}

		sort.Slice(points, func(i, j int) bool { return points[i].date.Before(points[j].date) })

		history := make([]models.HistoricalUsagePoint, len(points))
		var rateSum float64
		for i, p := range points {
			history[i] = p.point
			rateSum += p.point.RatePerBird
		}

		firstRate := history[0].RatePerBird
		lastRate := history[len(history)-1].RatePerBird

		var trendPct float64
		if firstRate > 0 {
			trendPct = round2((lastRate - firstRate) / firstRate * 100)
		}

		direction := models.TrendStable
		switch {
		case trendPct > trendThresholdPct:
			direction = models.TrendUp
		case trendPct < -trendThresholdPct:
			direction = models.TrendDown
		}

		confidence := models.ConfidenceMedium
		if len(history) >= 3 {
			confidence = models.ConfidenceHigh
		}

		summaries = append(summaries, models.TrendSummary{
			MedicationName:     item,
			HistoricalPoints:   history,
			AverageRatePerBird: rateSum / float64(len(history)),
			TrendPercentage:    trendPct,
			TrendDirection:     direction,
			Confidence:         confidence,
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].MedicationName < summaries[j].MedicationName })
	return summaries
}

// MonthlyVitaminForecast buckets vitamin/medication spend of active and
// completed batches by the calendar month of batch creation and projects
// the series forward with a linear monthly growth rate. Fewer than two
// monthly buckets yields an empty forecast with an explanatory status
// instead of a fabricated trend.
func MonthlyVitaminForecast(batches []models.Batch, horizonMonths int) models.MonthlyVitaminForecast {
	if horizonMonths <= 0 {
		horizonMonths = 3
	}

	spendByMonth := make(map[string]float64)
	for _, batch := range batches {
		status := strings.ToLower(batch.Status)
		if status != models.BatchStatusActive && status != models.BatchStatusCompleted {
			continue
		}

		created, err := time.Parse(dateLayout, batch.DateCreated)
		if err != nil {
			continue
		}

		month := created.Format(monthLayout)
		for _, exp := range batch.Expenses {
			if trendCategory(exp.Category) {
				spendByMonth[month] += exp.Amount
			}
		}
	}

	months := make([]string, 0, len(spendByMonth))
	for month := range spendByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	historical := make([]models.MonthlyUsagePoint, len(months))
	for i, month := range months {
		historical[i] = models.MonthlyUsagePoint{Month: month, TotalSpend: round2(spendByMonth[month])}
	}

	if len(months) < 2 {
		return models.MonthlyVitaminForecast{
			Status:     models.ForecastStatusInsufficientData,
			Historical: historical,
			Forecast:   []models.MonthlyUsagePoint{},
			Trend:      models.TrendStable,
		}
	}

	first := spendByMonth[months[0]]
	last := spendByMonth[months[len(months)-1]]
	growthRate := (last - first) / float64(len(months))

	lastDate, _ := time.Parse(monthLayout, months[len(months)-1])
	year, month := lastDate.Year(), int(lastDate.Month())

	forecast := make([]models.MonthlyUsagePoint, 0, horizonMonths)
	for i := 1; i <= horizonMonths; i++ {
		// Plain month arithmetic with explicit rollover: month 13 is
		// January of the following year.
		m := month + i
		y := year + (m-1)/12
		m = (m-1)%12 + 1

		projected := last + growthRate*float64(i)
		if projected < 0 {
			projected = 0
		}

		forecast = append(forecast, models.MonthlyUsagePoint{
			Month:      fmt.Sprintf("%04d-%02d", y, m),
			TotalSpend: round2(projected),
		})
	}

	trend := models.TrendStable
	switch {
	case growthRate > 0:
		trend = models.TrendUp
	case growthRate < 0:
		trend = models.TrendDown
	}

	return models.MonthlyVitaminForecast{
		Status:     models.ForecastStatusOK,
		Historical: historical,
		Forecast:   forecast,
		Trend:      trend,
		GrowthRate: round2(growthRate),
	}
}
