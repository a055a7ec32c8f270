package analytics

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"
)

// ErrInvalidWindow is returned when the requested day count is not positive.
var ErrInvalidWindow = errors.New("analytics: days must be a positive integer")

// PeriodSummary is the consumption/wastage rollup for one period.
type PeriodSummary struct {
	ItemsConsumed   float64 `json:"itemsConsumed"`
	ItemsWasted     float64 `json:"itemsWasted"`
	ValueSaved      float64 `json:"valueSaved"`
	UsagePercentage int     `json:"usagePercentage"`
}

// ReportPeriod describes the window the report covers.
type ReportPeriod struct {
	Days      int       `json:"days"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Report is the full analytics payload for one user and one trailing window.
type Report struct {
	ItemsConsumed     float64         `json:"itemsConsumed"`
	ItemsWasted       float64         `json:"itemsWasted"`
	ValueSaved        float64         `json:"valueSaved"`
	UsagePercentage   int             `json:"usagePercentage"`
	PreviousPeriod    PeriodSummary   `json:"previousPeriod"`
	CategoryBreakdown map[string]int  `json:"categoryBreakdown"`
	MostUsedItems     []MostUsedEntry `json:"mostUsedItems"`
	Period            ReportPeriod    `json:"period"`
}

// usagePercentage is consumed / (consumed + wasted) as a whole percentage,
// defined as 0 when there was no activity at all.
func usagePercentage(consumed, wasted float64) int {
	total := consumed + wasted
	if total == 0 {
		return 0
	}
	return int(math.Round(consumed / total * 100))
}

// BuildReport computes the analytics report for the trailing window of the
// given number of days ending at now. The six metric computations are
// independent reads with no shared state, so they run concurrently and each
// fills a disjoint slot of the report. Individual source failures have
// already been absorbed into safe defaults by the engine, so a degraded slot
// never fails the report.
func (e *Engine) BuildReport(ctx context.Context, userID uint, days int, now time.Time) (*Report, error) {
	if days <= 0 {
		return nil, ErrInvalidWindow
	}

	windows := ComputeWindows(days, now)

	var (
		currentConsumption MetricOutcome
		currentWastage     MetricOutcome
		breakdown          BreakdownOutcome
		mostUsed           MostUsedOutcome
		prevConsumption    MetricOutcome
		prevWastage        MetricOutcome
	)

	var wg sync.WaitGroup
	wg.Add(6)
	go func() {
		defer wg.Done()
		currentConsumption = e.ConsumptionMetrics(ctx, userID, windows.Current)
	}()
	go func() {
		defer wg.Done()
		currentWastage = e.WastageMetrics(ctx, userID, windows.Current)
	}()
	go func() {
		defer wg.Done()
		breakdown = e.CategoryBreakdown(ctx, userID, windows.Current)
	}()
	go func() {
		defer wg.Done()
		mostUsed = e.MostUsedItems(ctx, userID, windows.Current)
	}()
	go func() {
		defer wg.Done()
		prevConsumption = e.ConsumptionMetrics(ctx, userID, windows.Previous)
	}()
	go func() {
		defer wg.Done()
		prevWastage = e.WastageMetrics(ctx, userID, windows.Previous)
	}()
	wg.Wait()

	consumed := currentConsumption.Result
	wasted := currentWastage.Result
	prevConsumed := prevConsumption.Result
	prevWasted := prevWastage.Result

	return &Report{
		ItemsConsumed:   consumed.TotalItems,
		ItemsWasted:     wasted.TotalItems,
		ValueSaved:      consumed.EstimatedValue,
		UsagePercentage: usagePercentage(consumed.TotalItems, wasted.TotalItems),
		PreviousPeriod: PeriodSummary{
			ItemsConsumed:   prevConsumed.TotalItems,
			ItemsWasted:     prevWasted.TotalItems,
			ValueSaved:      prevConsumed.EstimatedValue,
			UsagePercentage: usagePercentage(prevConsumed.TotalItems, prevWasted.TotalItems),
		},
		CategoryBreakdown: breakdown.Breakdown,
		MostUsedItems:     mostUsed.Items,
		Period: ReportPeriod{
			Days:      days,
			StartDate: windows.Current.Start,
			EndDate:   windows.Current.End,
		},
	}, nil
}
