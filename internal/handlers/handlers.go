package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	applog "barkeep/internal/log"
	"barkeep/internal/recipes"
)

var (
	database   *gorm.DB
	repository *recipes.Repository
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(db *gorm.DB) {
	database = db
	if db != nil {
		repository = recipes.NewRepository(db)
	} else {
		repository = nil
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
