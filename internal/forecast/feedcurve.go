package forecast

import "fmt"

// Feed stages across the production cycle.
const (
	StageBooster  = "Booster"
	StageStarter  = "Starter"
	StageFinisher = "Finisher"
)

// CycleDays is the length of the planned production cycle covered by the
// feed curve.
const CycleDays = 30

// FeedBand is one row of the feed curve: an inclusive day interval with
// its per-bird daily intake and feed stage.
type FeedBand struct {
	FromDay      int
	ToDay        int
	GramsPerBird float64
	Stage        string
}

// feedCurve is the canonical intake table, grams per bird per day. Bands
// are ordered, disjoint and cover days 1..30.
var feedCurve = []FeedBand{
	{1, 2, 35.0, StageBooster},
	{3, 4, 45.0, StageBooster},
	{5, 7, 55.0, StageBooster},
	{8, 10, 70.0, StageBooster},
	{11, 13, 85.0, StageStarter},
	{14, 16, 100.0, StageStarter},
	{17, 19, 115.0, StageStarter},
	{20, 21, 125.0, StageStarter},
	{22, 23, 140.0, StageStarter},
	{24, 25, 155.0, StageFinisher},
	{26, 27, 170.0, StageFinisher},
	{28, 28, 180.0, StageFinisher},
	{29, 30, 190.0, StageFinisher},
}

// BandForDay returns the feed band covering the given cycle day. A day
// outside 1..30 is a caller bug, not bad data, so it fails loudly.
func BandForDay(day int) (FeedBand, error) {
	for _, band := range feedCurve {
		if day >= band.FromDay && day <= band.ToDay {
			return band, nil
		}
	}
	return FeedBand{}, fmt.Errorf("no feed band covers day %d", day)
}

// MaxDailyGrams is the adult plateau: the largest per-bird intake on the
// curve, used as the reference for age scaling.
func MaxDailyGrams() float64 {
	max := 0.0
	for _, band := range feedCurve {
		if band.GramsPerBird > max {
			max = band.GramsPerBird
		}
	}
	return max
}

// intakeForDay returns the per-bird intake for any simulation day,
// holding the day-30 plateau for days past the curve. Days before the
// curve are invalid and reported via BandForDay's error.
func intakeForDay(day int) (float64, error) {
	if day > CycleDays {
		return MaxDailyGrams(), nil
	}
	band, err := BandForDay(day)
	if err != nil {
		return 0, err
	}
	return band.GramsPerBird, nil
}
