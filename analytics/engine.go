package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jessism/Fridgy-Backend-sub003/logger"
	"github.com/jessism/Fridgy-Backend-sub003/models"
)

// MealDeduction is a single "used while cooking" event read from the usage
// log. Category and ItemName come from the linked inventory item; when the
// item has been purged and cannot be resolved, ItemResolved is false and the
// record contributes nothing to any metric.
type MealDeduction struct {
	AmountUsed   float64
	Unit         string
	Category     models.Category
	ItemName     string
	UsedAt       time.Time
	ItemResolved bool
}

// ManualDeletion is a soft-deleted inventory item read from the store.
type ManualDeletion struct {
	Quantity  float64
	Category  models.Category
	ItemName  string
	Reason    models.DeleteReason
	DeletedAt time.Time
}

// MealDeductionReader reads meal-type usage events for a user within a window.
type MealDeductionReader interface {
	MealDeductions(ctx context.Context, userID uint, window PeriodWindow) ([]MealDeduction, error)
}

// ManualDeletionReader reads soft-deletions with the given reason for a user
// within a window. Implementations never return "mistake" rows unless asked.
type ManualDeletionReader interface {
	ManualDeletions(ctx context.Context, userID uint, window PeriodWindow, reason models.DeleteReason) ([]ManualDeletion, error)
}

// MetricResult is a consumption or wastage total, both fields rounded to two
// decimals and never negative.
type MetricResult struct {
	TotalItems     float64 `json:"totalItems"`
	EstimatedValue float64 `json:"estimatedValue"`
}

// MetricOutcome wraps a MetricResult with degradation state. When a source
// read fails the outcome is Degraded with the zero result; the report keeps
// the zero and the reason stays available for logging/observability.
type MetricOutcome struct {
	Result   MetricResult
	Degraded bool
	Reason   string
}

// BreakdownOutcome is the category-percentage mapping plus degradation state.
type BreakdownOutcome struct {
	Breakdown map[string]int
	Degraded  bool
	Reason    string
}

// MostUsedEntry is one row of the most-used-items ranking. AvgDays is the
// mean gap in whole days between consecutive occurrences of the item name
// within the window, 0 when it occurred fewer than twice.
type MostUsedEntry struct {
	ItemName string `json:"itemName"`
	Count    int    `json:"count"`
	AvgDays  int    `json:"avgDays"`
}

// MostUsedOutcome is the most-used ranking plus degradation state.
type MostUsedOutcome struct {
	Items    []MostUsedEntry
	Degraded bool
	Reason   string
}

// Engine computes usage analytics from the two independent usage sources:
// meal-cooking deductions and manual soft-deletions.
type Engine struct {
	meals     MealDeductionReader
	deletions ManualDeletionReader
}

// NewEngine returns an Engine over the given readers.
func NewEngine(meals MealDeductionReader, deletions ManualDeletionReader) *Engine {
	return &Engine{meals: meals, deletions: deletions}
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ConsumptionMetrics totals everything the user consumed within the window:
// meal deductions plus manual "used up" deletions. The two sources represent
// different real-world actions (cooking vs. manual bookkeeping) and are summed
// additively with no deduplication between them — that is intentional, not
// double counting. A failed read from either source degrades the whole metric
// to zero rather than failing the report.
func (e *Engine) ConsumptionMetrics(ctx context.Context, userID uint, window PeriodWindow) MetricOutcome {
	deductions, err := e.meals.MealDeductions(ctx, userID, window)
	if err != nil {
		logger.Warn("consumption metrics degraded: meal deduction read failed", "user_id", userID, "error", err)
		return MetricOutcome{Degraded: true, Reason: "meal deduction read failed: " + err.Error()}
	}

	deletions, err := e.deletions.ManualDeletions(ctx, userID, window, models.DeleteReasonUsedUp)
	if err != nil {
		logger.Warn("consumption metrics degraded: deletion read failed", "user_id", userID, "error", err)
		return MetricOutcome{Degraded: true, Reason: "manual deletion read failed: " + err.Error()}
	}

	var totalItems, estimatedValue float64
	for _, d := range deductions {
		if !d.ItemResolved {
			continue
		}
		totalItems += d.AmountUsed
		estimatedValue += d.AmountUsed * EstimatedUnitCost(string(d.Category))
	}
	for _, d := range deletions {
		totalItems += d.Quantity
		estimatedValue += d.Quantity * EstimatedUnitCost(string(d.Category))
	}

	return MetricOutcome{Result: MetricResult{
		TotalItems:     round2(totalItems),
		EstimatedValue: round2(estimatedValue),
	}}
}

// WastageMetrics totals manual "thrown away" deletions within the window.
// Meal deductions never count as wastage.
func (e *Engine) WastageMetrics(ctx context.Context, userID uint, window PeriodWindow) MetricOutcome {
	deletions, err := e.deletions.ManualDeletions(ctx, userID, window, models.DeleteReasonThrownAway)
	if err != nil {
		logger.Warn("wastage metrics degraded: deletion read failed", "user_id", userID, "error", err)
		return MetricOutcome{Degraded: true, Reason: "manual deletion read failed: " + err.Error()}
	}

	var totalItems, estimatedValue float64
	for _, d := range deletions {
		totalItems += d.Quantity
		estimatedValue += d.Quantity * EstimatedUnitCost(string(d.Category))
	}

	return MetricOutcome{Result: MetricResult{
		TotalItems:     round2(totalItems),
		EstimatedValue: round2(estimatedValue),
	}}
}

// CategoryBreakdown buckets consumed quantity (not value) by category and
// returns each category's integer share of the grand total. Percentages are
// rounded independently per category and are not renormalized, so the values
// may not sum to exactly 100. An empty mapping means no qualifying activity.
func (e *Engine) CategoryBreakdown(ctx context.Context, userID uint, window PeriodWindow) BreakdownOutcome {
	deductions, err := e.meals.MealDeductions(ctx, userID, window)
	if err != nil {
		logger.Warn("category breakdown degraded: meal deduction read failed", "user_id", userID, "error", err)
		return BreakdownOutcome{Breakdown: map[string]int{}, Degraded: true, Reason: "meal deduction read failed: " + err.Error()}
	}

	deletions, err := e.deletions.ManualDeletions(ctx, userID, window, models.DeleteReasonUsedUp)
	if err != nil {
		logger.Warn("category breakdown degraded: deletion read failed", "user_id", userID, "error", err)
		return BreakdownOutcome{Breakdown: map[string]int{}, Degraded: true, Reason: "manual deletion read failed: " + err.Error()}
	}

	totals := make(map[string]float64)
	var grandTotal float64
	for _, d := range deductions {
		if !d.ItemResolved {
			continue
		}
		totals[string(d.Category)] += d.AmountUsed
		grandTotal += d.AmountUsed
	}
	for _, d := range deletions {
		totals[string(d.Category)] += d.Quantity
		grandTotal += d.Quantity
	}

	breakdown := make(map[string]int)
	if grandTotal == 0 {
		return BreakdownOutcome{Breakdown: breakdown}
	}
	for category, total := range totals {
		breakdown[category] = int(math.Round(total / grandTotal * 100))
	}
	return BreakdownOutcome{Breakdown: breakdown}
}

// mostUsedLimit caps the most-used ranking.
const mostUsedLimit = 5

// MostUsedItems ranks item names by how often they were consumed within the
// window, merging meal deductions and manual "used up" deletions under the
// same name key. Ties keep the order the sources returned them in.
func (e *Engine) MostUsedItems(ctx context.Context, userID uint, window PeriodWindow) MostUsedOutcome {
	deductions, err := e.meals.MealDeductions(ctx, userID, window)
	if err != nil {
		logger.Warn("most used items degraded: meal deduction read failed", "user_id", userID, "error", err)
		return MostUsedOutcome{Items: []MostUsedEntry{}, Degraded: true, Reason: "meal deduction read failed: " + err.Error()}
	}

	deletions, err := e.deletions.ManualDeletions(ctx, userID, window, models.DeleteReasonUsedUp)
	if err != nil {
		logger.Warn("most used items degraded: deletion read failed", "user_id", userID, "error", err)
		return MostUsedOutcome{Items: []MostUsedEntry{}, Degraded: true, Reason: "manual deletion read failed: " + err.Error()}
	}

	type itemUsage struct {
		name       string
		count      int
		timestamps []time.Time
	}

	byName := make(map[string]*itemUsage)
	var order []*itemUsage
	record := func(name string, at time.Time) {
		usage, ok := byName[name]
		if !ok {
			usage = &itemUsage{name: name}
			byName[name] = usage
			order = append(order, usage)
		}
		usage.count++
		usage.timestamps = append(usage.timestamps, at)
	}

	for _, d := range deductions {
		if !d.ItemResolved {
			continue
		}
		record(d.ItemName, d.UsedAt)
	}
	for _, d := range deletions {
		record(d.ItemName, d.DeletedAt)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})
	if len(order) > mostUsedLimit {
		order = order[:mostUsedLimit]
	}

	entries := make([]MostUsedEntry, 0, len(order))
	for _, usage := range order {
		entries = append(entries, MostUsedEntry{
			ItemName: usage.name,
			Count:    usage.count,
			AvgDays:  avgGapDays(usage.timestamps),
		})
	}
	return MostUsedOutcome{Items: entries}
}

// avgGapDays returns the mean gap in days between consecutive timestamps,
// rounded to the nearest whole day. Fewer than two timestamps yields 0.
func avgGapDays(timestamps []time.Time) int {
	if len(timestamps) < 2 {
		return 0
	}
	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += sorted[i].Sub(sorted[i-1]).Hours() / 24
	}
	return int(math.Round(totalDays / float64(len(sorted)-1)))
}
