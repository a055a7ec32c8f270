package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jessism/Fridgy-Backend-sub003/models"
)

func TestBuildReportRejectsNonPositiveDays(t *testing.T) {
	t.Parallel()
	engine := NewEngine(&fakeMealReader{}, &fakeDeletionReader{})
	for _, days := range []int{0, -1, -30} {
		if _, err := engine.BuildReport(context.Background(), 1, days, time.Now()); !errors.Is(err, ErrInvalidWindow) {
			t.Fatalf("days=%d: expected ErrInvalidWindow, got %v", days, err)
		}
	}
}

func TestBuildReportZeroActivity(t *testing.T) {
	t.Parallel()
	engine := NewEngine(&fakeMealReader{}, &fakeDeletionReader{})

	report, err := engine.BuildReport(context.Background(), 1, 30, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.UsagePercentage != 0 {
		t.Fatalf("usagePercentage = %d, want 0 with no activity", report.UsagePercentage)
	}
	if report.PreviousPeriod.UsagePercentage != 0 {
		t.Fatalf("previous usagePercentage = %d, want 0", report.PreviousPeriod.UsagePercentage)
	}
	if len(report.CategoryBreakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %v", report.CategoryBreakdown)
	}
	if len(report.MostUsedItems) != 0 {
		t.Fatalf("expected no most-used items, got %v", report.MostUsedItems)
	}
}

func TestBuildReportAssemblesAllSlots(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	inCurrent := now.Add(-2 * 24 * time.Hour)
	meals := &fakeMealReader{deductions: []MealDeduction{
		{AmountUsed: 2, Category: models.CategoryProtein, ItemName: "Chicken", UsedAt: inCurrent, ItemResolved: true},
	}}
	deletions := &fakeDeletionReader{byReason: map[models.DeleteReason][]ManualDeletion{
		models.DeleteReasonThrownAway: {
			{Quantity: 2, Category: models.CategoryDairy, ItemName: "Milk", DeletedAt: inCurrent},
		},
	}}
	engine := NewEngine(meals, deletions)

	report, err := engine.BuildReport(context.Background(), 1, 7, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ItemsConsumed != 2 {
		t.Fatalf("itemsConsumed = %v, want 2", report.ItemsConsumed)
	}
	if report.ItemsWasted != 2 {
		t.Fatalf("itemsWasted = %v, want 2", report.ItemsWasted)
	}
	// valueSaved is the consumption estimate: 2 * 4.50.
	if report.ValueSaved != 9.00 {
		t.Fatalf("valueSaved = %v, want 9.00", report.ValueSaved)
	}
	if report.UsagePercentage != 50 {
		t.Fatalf("usagePercentage = %d, want 50", report.UsagePercentage)
	}
	if report.Period.Days != 7 {
		t.Fatalf("period days = %d, want 7", report.Period.Days)
	}
	if !report.Period.EndDate.Equal(now) {
		t.Fatalf("period endDate = %v, want %v", report.Period.EndDate, now)
	}
	if !report.Period.StartDate.Equal(now.Add(-7 * 24 * time.Hour)) {
		t.Fatalf("period startDate = %v", report.Period.StartDate)
	}
	if report.CategoryBreakdown[string(models.CategoryProtein)] != 100 {
		t.Fatalf("breakdown = %v, want Protein 100", report.CategoryBreakdown)
	}
	if len(report.MostUsedItems) != 1 || report.MostUsedItems[0].ItemName != "Chicken" {
		t.Fatalf("mostUsedItems = %v", report.MostUsedItems)
	}
}

func TestBuildReportSurvivesFailedWastageRead(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	meals := &fakeMealReader{deductions: []MealDeduction{
		{AmountUsed: 1, Category: models.CategoryFruits, ItemName: "Bananas", UsedAt: now.Add(-24 * time.Hour), ItemResolved: true},
	}}
	deletions := &fakeDeletionReader{err: errors.New("connection reset")}
	engine := NewEngine(meals, deletions)

	report, err := engine.BuildReport(context.Background(), 1, 30, now)
	if err != nil {
		t.Fatalf("report must survive a failed sub-metric read, got %v", err)
	}
	if report.ItemsWasted != 0 {
		t.Fatalf("failed wastage read must degrade to zero, got %v", report.ItemsWasted)
	}
	// Consumption also reads deletions, so it degrades to zero here too; the
	// report itself still assembles.
	if report.ItemsConsumed != 0 {
		t.Fatalf("itemsConsumed = %v, want 0", report.ItemsConsumed)
	}
	if report.UsagePercentage != 0 {
		t.Fatalf("usagePercentage = %d, want 0", report.UsagePercentage)
	}
}

func TestUsagePercentage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		consumed, wasted float64
		want             int
	}{
		{0, 0, 0},
		{10, 0, 100},
		{0, 10, 0},
		{5, 5, 50},
		{2, 1, 67},
	}
	for _, tc := range cases {
		if got := usagePercentage(tc.consumed, tc.wasted); got != tc.want {
			t.Fatalf("usagePercentage(%v, %v) = %d, want %d", tc.consumed, tc.wasted, got, tc.want)
		}
	}
}
