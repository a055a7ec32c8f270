package repository

import (
	"context"
	"fmt"

	"github.com/jessism/Fridgy-Backend-sub003/analytics"
	"github.com/jessism/Fridgy-Backend-sub003/models"
	"gorm.io/gorm"
)

// UsageRepository reads the two analytics usage sources from the store.
// It implements analytics.MealDeductionReader and analytics.ManualDeletionReader.
type UsageRepository struct {
	db *gorm.DB
}

// NewUsageRepository returns a UsageRepository over the given connection.
func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// MealDeductions returns the user's meal-type usage events within the window.
// The linked item is preloaded unscoped so deductions against since-deleted
// items still resolve their category and name; events whose item row was
// physically purged come back with ItemResolved false.
func (r *UsageRepository) MealDeductions(ctx context.Context, userID uint, window analytics.PeriodWindow) ([]analytics.MealDeduction, error) {
	var events []models.UsageEvent
	err := r.db.WithContext(ctx).
		Preload("Item", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ? AND usage_type = ? AND used_at >= ? AND used_at < ?",
			userID, models.UsageTypeMeal, window.Start, window.End).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("query meal deductions: %w", err)
	}

	deductions := make([]analytics.MealDeduction, 0, len(events))
	for _, e := range events {
		d := analytics.MealDeduction{
			AmountUsed: e.AmountUsed,
			Unit:       e.Unit,
			UsedAt:     e.UsedAt,
		}
		if e.Item != nil {
			d.ItemResolved = true
			d.Category = models.ParseCategory(string(e.Item.Category))
			d.ItemName = e.Item.ItemName
		}
		deductions = append(deductions, d)
	}
	return deductions, nil
}

// ManualDeletions returns the user's soft-deleted items with the given reason
// whose deletion falls within the window. The read is unscoped because the
// rows of interest are exactly the soft-deleted ones.
func (r *UsageRepository) ManualDeletions(ctx context.Context, userID uint, window analytics.PeriodWindow, reason models.DeleteReason) ([]analytics.ManualDeletion, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND delete_reason = ? AND deleted_at >= ? AND deleted_at < ?",
			userID, reason, window.Start, window.End).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("query manual deletions: %w", err)
	}

	deletions := make([]analytics.ManualDeletion, 0, len(items))
	for _, item := range items {
		deletions = append(deletions, analytics.ManualDeletion{
			Quantity:  item.Quantity,
			Category:  models.ParseCategory(string(item.Category)),
			ItemName:  item.ItemName,
			Reason:    reason,
			DeletedAt: item.DeletedAt.Time,
		})
	}
	return deletions, nil
}
