package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated user in the system.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string         `gorm:"size:255" json:"name"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []InventoryItem `json:"items,omitempty"`
}

// Category is the closed set of food categories. Anything the store cannot
// classify is normalized to CategoryOther at the boundary, so downstream
// cost and percentage math never sees a free-text category.
type Category string

const (
	CategoryProtein    Category = "Protein"
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryDairy      Category = "Dairy"
	CategoryGrains     Category = "Grains"
	CategoryOther      Category = "Other"
)

// ParseCategory normalizes a free-text category label. Matching is
// case-insensitive and accepts singular forms; "Pasta" maps to Grains.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "protein", "proteins", "meat":
		return CategoryProtein
	case "vegetable", "vegetables", "veggies":
		return CategoryVegetables
	case "fruit", "fruits":
		return CategoryFruits
	case "dairy":
		return CategoryDairy
	case "grain", "grains", "pasta":
		return CategoryGrains
	default:
		return CategoryOther
	}
}

// DeleteReason records why an inventory item was soft-deleted.
// Mistake deletions are corrections and are excluded from all analytics.
type DeleteReason string

const (
	DeleteReasonMistake    DeleteReason = "mistake"
	DeleteReasonUsedUp     DeleteReason = "used_up"
	DeleteReasonThrownAway DeleteReason = "thrown_away"
)

// ValidDeleteReason reports whether s is one of the known delete reasons.
func ValidDeleteReason(s string) bool {
	switch DeleteReason(s) {
	case DeleteReasonMistake, DeleteReasonUsedUp, DeleteReasonThrownAway:
		return true
	}
	return false
}

// InventoryItem is a single pantry/fridge item owned by a user.
// Deletion is always soft: DeletedAt and DeleteReason are set together by the
// delete path, never independently, so the reason is non-null iff the item is
// deleted. Deleted rows are kept for consumption/wastage analytics.
type InventoryItem struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	ItemName   string         `gorm:"size:255;not null" json:"item_name"`
	Category   Category       `gorm:"size:50;not null;default:'Other'" json:"category"`
	Quantity   float64        `gorm:"not null;default:0" json:"quantity"`
	Unit       string         `gorm:"size:50" json:"unit"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	DeleteReason *DeleteReason `gorm:"size:50" json:"delete_reason,omitempty"`
}

const UsageTypeMeal = "meal"

// UsageEvent records a quantity deducted from an inventory item, e.g. when a
// meal is cooked. Only events with UsageType "meal" count toward consumption
// analytics; other usage types exist for bookkeeping.
type UsageEvent struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	InventoryItemID *uint     `gorm:"index" json:"inventory_item_id"`
	AmountUsed      float64   `gorm:"not null" json:"amount_used"`
	Unit            string    `gorm:"size:50" json:"unit"`
	UsageType       string    `gorm:"size:50;not null;default:'meal'" json:"usage_type"`
	UsedAt          time.Time `gorm:"index" json:"used_at"`
	CreatedAt       time.Time `json:"created_at"`

	Item *InventoryItem `gorm:"foreignKey:InventoryItemID" json:"item,omitempty"`
}
