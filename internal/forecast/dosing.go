package forecast

import "strings"

// DoseMode distinguishes supplements whose daily need grows with the
// bird from single-shot products dosed purely by head count.
type DoseMode int

const (
	// DoseScalable scales with population and with apparent bird size.
	// Electrolytes, vitamins and antibiotics fall here.
	DoseScalable DoseMode = iota
	// DoseFixedPerThousand scales with population only. Vaccines are
	// administered at the labelled rate regardless of age.
	DoseFixedPerThousand
)

// MedicationProfile maps an item-name keyword to its labelled dose per
// 1000 birds.
type MedicationProfile struct {
	Keyword         string
	Mode            DoseMode
	DosePerThousand float64
	Unit            string
}

// dosingTable is evaluated top to bottom; the first keyword contained in
// the item name wins. Order is load-bearing — ambiguous names like
// "vetracin vitamin premix" must resolve to the more specific row — so
// this stays an ordered slice, never a map.
var dosingTable = []MedicationProfile{
	{"vetracin", DoseScalable, 100.0, "g"},
	{"amtyl", DoseScalable, 80.0, "g"},
	{"doxylak", DoseScalable, 75.0, "g"},
	{"electrolyte", DoseScalable, 70.0, "g"},
	{"b-complex", DoseScalable, 60.0, "ml"},
	{"vitamin", DoseScalable, 50.0, "g"},
	{"vaccine", DoseFixedPerThousand, 100.0, "ml"},
	{"ncd", DoseFixedPerThousand, 100.0, "ml"},
}

// defaultProfile covers items the table does not recognize: a generic
// age-scalable supplement at 50 g per 1000 birds.
var defaultProfile = MedicationProfile{Mode: DoseScalable, DosePerThousand: 50.0, Unit: "g"}

// ResolveProfile matches an expense item name against the dosing table,
// case-insensitively, in table order.
func ResolveProfile(itemName string) MedicationProfile {
	name := strings.ToLower(itemName)
	for _, profile := range dosingTable {
		if strings.Contains(name, profile.Keyword) {
			return profile
		}
	}
	return defaultProfile
}
