package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/jessism/Fridgy-Backend-sub003/middleware"
)

func getUserID(r *http.Request) (uint, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok || id == 0 {
		return 0, http.ErrNoCookie
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeData wraps a successful payload in the standard response envelope.
func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}
