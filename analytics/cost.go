package analytics

import "strings"

// Estimated cost per unit of inventory, keyed by coarse food category.
// Values are currency-agnostic estimates used for the "value saved" numbers.
var unitCosts = map[string]float64{
	"protein":   4.50,
	"vegetable": 1.25,
	"fruit":     1.75,
	"dairy":     2.00,
	"grain":     0.85,
	"other":     1.50,
}

// EstimatedUnitCost returns the estimated per-unit cost for a category.
// Lookup is case-insensitive and tolerates plural labels; anything
// unrecognized falls back to the "other" rate, so there is no error case.
func EstimatedUnitCost(category string) float64 {
	key := strings.ToLower(strings.TrimSpace(category))
	key = strings.TrimSuffix(key, "s")
	if cost, ok := unitCosts[key]; ok {
		return cost
	}
	return unitCosts["other"]
}
