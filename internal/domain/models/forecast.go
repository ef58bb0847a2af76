package models

// FeedForecastEntry is one day of the 30-day feed plan for a batch.
type FeedForecastEntry struct {
	Day          int     `bson:"day" json:"day"`
	FeedType     string  `bson:"feedType" json:"feedType"`
	GramsPerBird float64 `bson:"gramsPerBird" json:"gramsPerBird"`
	TargetKilos  float64 `bson:"targetKilos" json:"targetKilos"`
}

// WeightForecastEntry reports projected flock weight at a milestone day.
type WeightForecastEntry struct {
	Day                    string  `json:"day"`
	TotalFlockWeightKg     float64 `json:"totalFlockWeightKg"`
	AverageBirdWeightGrams int     `json:"averageBirdWeightGrams"`
	FCRUsed                float64 `json:"fcrUsed"`
	Unit                   string  `json:"unit"`
}

// DepletionEvent is one day of simulated consumption against a purchased
// medication or vitamin lot.
type DepletionEvent struct {
	ItemName       string  `bson:"itemName" json:"itemName"`
	Day            int     `bson:"day" json:"day"`
	AmountConsumed float64 `bson:"amountConsumed" json:"amountConsumed"`
	Unit           string  `bson:"unit" json:"unit"`
}

// FeedForecastResult bundles the feed plan and the derived weight
// projection returned by the feed-forecast operation.
type FeedForecastResult struct {
	BatchName      string                `json:"batchName"`
	FeedForecast   []FeedForecastEntry   `json:"feedForecast"`
	WeightForecast []WeightForecastEntry `json:"weightForecast"`
}

// HistoricalUsagePoint is one completed batch's usage of a given item.
type HistoricalUsagePoint struct {
	BatchDate   string  `json:"batchDate"`
	Population  int     `json:"population"`
	TotalAmount float64 `json:"totalAmount"`
	RatePerBird float64 `json:"ratePerBird"`
}

// Trend directions and confidence levels reported by the aggregator.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"

	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// TrendSummary describes how per-bird usage of one item has moved across
// completed batches.
type TrendSummary struct {
	MedicationName     string                 `json:"medicationName"`
	HistoricalPoints   []HistoricalUsagePoint `json:"historicalPoints"`
	AverageRatePerBird float64                `json:"averageRatePerBird"`
	TrendPercentage    float64                `json:"trendPercentage"`
	TrendDirection     string                 `json:"trendDirection"`
	Confidence         string                 `json:"confidence"`
}

// MonthlyUsagePoint is total vitamin/medication spend for one calendar month.
type MonthlyUsagePoint struct {
	Month      string  `json:"month"` // YYYY-MM
	TotalSpend float64 `json:"totalSpend"`
}

// Monthly forecast statuses.
const (
	ForecastStatusOK               = "ok"
	ForecastStatusInsufficientData = "insufficient_data"
)

// MonthlyVitaminForecast carries the historical monthly series and the
// linear projection for the requested horizon.
type MonthlyVitaminForecast struct {
	Status     string              `json:"status"`
	Historical []MonthlyUsagePoint `json:"historical"`
	Forecast   []MonthlyUsagePoint `json:"forecast"`
	Trend      string              `json:"trend"`
	GrowthRate float64             `json:"growthRate"`
}
