package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jessism/Fridgy-Backend-sub003/database"
	"github.com/jessism/Fridgy-Backend-sub003/logger"
	"github.com/jessism/Fridgy-Backend-sub003/models"
)

type createItemRequest struct {
	ItemName   string     `json:"item_name"`
	Category   string     `json:"category"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type updateItemRequest struct {
	ItemName   *string    `json:"item_name"`
	Category   *string    `json:"category"`
	Quantity   *float64   `json:"quantity"`
	Unit       *string    `json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type deleteItemRequest struct {
	Reason string `json:"reason"`
}

// GetInventory lists the user's alive inventory items.
func GetInventory(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var items []models.InventoryItem
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error; err != nil {
		logger.Error("Failed to list inventory", "user_id", userID, "error", err)
		http.Error(w, "Failed to list inventory", http.StatusInternalServerError)
		return
	}

	writeData(w, http.StatusOK, items)
}

// CreateInventoryItem adds a new item to the user's inventory.
func CreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ItemName == "" {
		http.Error(w, "item_name is required", http.StatusBadRequest)
		return
	}
	if req.Quantity < 0 {
		http.Error(w, "quantity must be non-negative", http.StatusBadRequest)
		return
	}

	item := models.InventoryItem{
		UserID:     userID,
		ItemName:   req.ItemName,
		Category:   models.ParseCategory(req.Category),
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: req.ExpiryDate,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		logger.Error("Failed to create item", "user_id", userID, "error", err)
		http.Error(w, "Failed to create item", http.StatusInternalServerError)
		return
	}

	writeData(w, http.StatusCreated, item)
}

// UpdateInventoryItem patches an item's fields.
func UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	item, ok := findUserItem(w, r, userID)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{}
	if req.ItemName != nil {
		updates["item_name"] = *req.ItemName
	}
	if req.Category != nil {
		updates["category"] = models.ParseCategory(*req.Category)
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			http.Error(w, "quantity must be non-negative", http.StatusBadRequest)
			return
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.ExpiryDate != nil {
		updates["expiry_date"] = *req.ExpiryDate
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			logger.Error("Failed to update item", "item_id", item.ID, "error", err)
			http.Error(w, "Failed to update item", http.StatusInternalServerError)
			return
		}
	}

	writeData(w, http.StatusOK, item)
}

// DeleteInventoryItem soft-deletes an item with a reason. The deletion
// timestamp and reason are written together so one is never set without the
// other; used_up and thrown_away rows feed the analytics, mistake rows do not.
func DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	item, ok := findUserItem(w, r, userID)
	if !ok {
		return
	}

	var req deleteItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if !models.ValidDeleteReason(req.Reason) {
		http.Error(w, "reason must be one of mistake, used_up, thrown_away", http.StatusBadRequest)
		return
	}

	err = database.DB.Model(&item).Updates(map[string]interface{}{
		"delete_reason": req.Reason,
		"deleted_at":    time.Now(),
	}).Error
	if err != nil {
		logger.Error("Failed to delete item", "item_id", item.ID, "error", err)
		http.Error(w, "Failed to delete item", http.StatusInternalServerError)
		return
	}

	logger.Info("Item soft-deleted", "item_id", item.ID, "reason", req.Reason)
	writeData(w, http.StatusOK, map[string]interface{}{
		"id":     item.ID,
		"reason": req.Reason,
	})
}

// GetLowStock lists alive items at or below a quantity threshold (default 1).
func GetLowStock(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	threshold := 1.0
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 {
			threshold = parsed
		}
	}

	var items []models.InventoryItem
	if err := database.DB.Where("user_id = ? AND quantity <= ?", userID, threshold).Order("quantity asc").Find(&items).Error; err != nil {
		logger.Error("Failed to list low stock", "user_id", userID, "error", err)
		http.Error(w, "Failed to list low stock", http.StatusInternalServerError)
		return
	}

	writeData(w, http.StatusOK, items)
}

// findUserItem loads the item from the URL param and checks ownership.
// It writes the error response itself when the lookup fails.
func findUserItem(w http.ResponseWriter, r *http.Request, userID uint) (models.InventoryItem, bool) {
	idStr := chi.URLParam(r, "item_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		http.Error(w, "Invalid item_id", http.StatusBadRequest)
		return models.InventoryItem{}, false
	}

	var item models.InventoryItem
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return models.InventoryItem{}, false
	}
	return item, true
}
