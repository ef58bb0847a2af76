package forecast

import (
	"strings"
	"time"

	"poultryfarm/backend/internal/domain/models"
)

const (
	// DepletionDayCap bounds the simulation past the planned cycle to
	// cover late purchases and extended grow-outs.
	DepletionDayCap = 45

	// growthFactorFloor keeps day-old chicks from being assigned
	// near-zero doses of scalable supplements.
	growthFactorFloor = 0.20

	dateLayout = "2006-01-02"
)

// InventoryLot is one purchased medication/vitamin quantity awaiting
// consumption, with its dosing profile resolved.
type InventoryLot struct {
	ItemName     string
	PurchaseDate time.Time
	Quantity     float64
	Unit         string
	Profile      MedicationProfile
}

// medicationCategory reports whether an expense category denotes a
// consumable the depletion simulator should track.
func medicationCategory(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "vitamin") || strings.Contains(c, "medicine") ||
		strings.Contains(c, "medication") || strings.Contains(c, "vaccine")
}

// LotFromExpense converts a qualifying expense record into an inventory
// lot. Records with the wrong category, a non-positive quantity or an
// unparseable date yield no lot; this is reporting tooling and bad rows
// are skipped, never fatal.
func LotFromExpense(exp models.ExpenseRecord) (InventoryLot, bool) {
	if !medicationCategory(exp.Category) {
		return InventoryLot{}, false
	}

	quantity := exp.Quantity
	if exp.PurchaseCount > 0 {
		quantity *= exp.PurchaseCount
	}
	if quantity <= 0 {
		return InventoryLot{}, false
	}

	purchased, err := time.Parse(dateLayout, exp.Date)
	if err != nil {
		return InventoryLot{}, false
	}

	profile := ResolveProfile(exp.ItemName)
	unit := exp.Unit
	if unit == "" {
		unit = profile.Unit
	}

	return InventoryLot{
		ItemName:     exp.ItemName,
		PurchaseDate: purchased,
		Quantity:     quantity,
		Unit:         unit,
		Profile:      profile,
	}, true
}

// GrowthFactor scales an adult dose down to the apparent bird size on the
// given day: the day's feed intake relative to the adult plateau, floored.
func GrowthFactor(day int) (float64, error) {
	intake, err := intakeForDay(day)
	if err != nil {
		return 0, err
	}

	factor := intake / MaxDailyGrams()
	if factor < growthFactorFloor {
		factor = growthFactorFloor
	}
	return factor, nil
}

// DepletionSchedule simulates day-by-day consumption of one lot for the
// given flock, starting at the lot's purchase day relative to batch start
// and running until the lot is exhausted or the day cap is reached.
func DepletionSchedule(population int, batchStart time.Time, lot InventoryLot) ([]models.DepletionEvent, error) {
	if population <= 0 || lot.Quantity <= 0 {
		return nil, nil
	}

	popRatio := float64(population) / 1000.0

	startDay := int(lot.PurchaseDate.Sub(batchStart).Hours()/24) + 1
	if startDay < 1 {
		startDay = 1
	}

	events := make([]models.DepletionEvent, 0)
	remaining := lot.Quantity

	for day := startDay; remaining > 0 && day <= DepletionDayCap; day++ {
		dailyNeed := lot.Profile.DosePerThousand * popRatio
		if lot.Profile.Mode == DoseScalable {
			factor, err := GrowthFactor(day)
			if err != nil {
				return nil, err
			}
			dailyNeed *= factor
		}

		amountUsed := round2(dailyNeed)
		if amountUsed > remaining {
			amountUsed = remaining
		}
		if amountUsed <= 0 {
			break
		}

		events = append(events, models.DepletionEvent{
			ItemName:       lot.ItemName,
			Day:            day,
			AmountConsumed: amountUsed,
			Unit:           lot.Unit,
		})
		remaining -= amountUsed
	}

	return events, nil
}
