package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jessism/Fridgy-Backend-sub003/database"
	"github.com/jessism/Fridgy-Backend-sub003/logger"
	"github.com/jessism/Fridgy-Backend-sub003/models"
)

type useItemRequest struct {
	AmountUsed float64 `json:"amount_used"`
	Unit       string  `json:"unit"`
}

// UseInventoryItem records a meal-cooking deduction against an item: a
// UsageEvent is written for analytics and the item's quantity is reduced,
// flooring at zero.
func UseInventoryItem(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	item, ok := findUserItem(w, r, userID)
	if !ok {
		return
	}

	var req useItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.AmountUsed <= 0 {
		http.Error(w, "amount_used must be positive", http.StatusBadRequest)
		return
	}

	unit := req.Unit
	if unit == "" {
		unit = item.Unit
	}

	event := models.UsageEvent{
		UserID:          userID,
		InventoryItemID: &item.ID,
		AmountUsed:      req.AmountUsed,
		Unit:            unit,
		UsageType:       models.UsageTypeMeal,
		UsedAt:          time.Now(),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		logger.Error("Failed to record usage", "item_id", item.ID, "error", err)
		http.Error(w, "Failed to record usage", http.StatusInternalServerError)
		return
	}

	newQty := item.Quantity - req.AmountUsed
	if newQty < 0 {
		newQty = 0
	}
	if err := database.DB.Model(&item).Update("quantity", newQty).Error; err != nil {
		logger.Error("Failed to deduct quantity", "item_id", item.ID, "error", err)
		http.Error(w, "Failed to deduct quantity", http.StatusInternalServerError)
		return
	}

	logger.Info("Usage recorded", "item_id", item.ID, "amount_used", req.AmountUsed, "new_qty", newQty)
	writeData(w, http.StatusOK, map[string]interface{}{
		"usage_event_id": event.ID,
		"item_id":        item.ID,
		"quantity":       newQty,
	})
}
