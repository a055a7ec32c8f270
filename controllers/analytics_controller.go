package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jessism/Fridgy-Backend-sub003/analytics"
	"github.com/jessism/Fridgy-Backend-sub003/database"
	"github.com/jessism/Fridgy-Backend-sub003/logger"
	"github.com/jessism/Fridgy-Backend-sub003/repository"
)

const defaultAnalyticsDays = 30

// parseDaysParam interprets the days query parameter. Absent or non-numeric
// values fall back to the default; an explicit non-positive value is a client
// error rather than a silently inverted window.
func parseDaysParam(raw string) (int, error) {
	if raw == "" {
		return defaultAnalyticsDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return defaultAnalyticsDays, nil
	}
	if days <= 0 {
		return 0, analytics.ErrInvalidWindow
	}
	return days, nil
}

// GetInventoryAnalytics returns the consumption/wastage analytics report for
// the authenticated user over a trailing window of days (default 30).
func GetInventoryAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	days, err := parseDaysParam(r.URL.Query().Get("days"))
	if err != nil {
		http.Error(w, "days must be a positive integer", http.StatusBadRequest)
		return
	}

	repo := repository.NewUsageRepository(database.DB)
	engine := analytics.NewEngine(repo, repo)

	report, err := engine.BuildReport(r.Context(), userID, days, time.Now())
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidWindow) {
			http.Error(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
		logger.Error("Failed to build analytics report", "user_id", userID, "error", err)
		http.Error(w, "Failed to build analytics report", http.StatusInternalServerError)
		return
	}

	writeData(w, http.StatusOK, report)
}
