package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"barkeep/internal/recipes"
	"barkeep/models"
)

func withCocktailTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	originalDB := database
	originalRepo := repository
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Ingredient{},
		&models.Tag{},
		&models.Garnish{},
		&models.Cocktail{},
		&models.CocktailIngredient{},
		&models.Instruction{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	Configure(db)
	return db, func() {
		database = originalDB
		repository = originalRepo
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func TestCocktailCreateGetList(t *testing.T) {
	_, cleanup := withCocktailTestDatabase(t)
	t.Cleanup(cleanup)

	payload := map[string]any{
		"title": "Daiquiri",
		"ingredients": []map[string]any{
			{"name": "Rum", "quantity": "2", "unit": "oz"},
			{"name": "Lime Juice", "quantity": "1", "unit": "oz"},
		},
		"instructions": []string{"Shake", "Strain"},
		"metadata": map[string]any{
			"tags":        []string{"Classic"},
			"flavor_tags": []string{"Sour"},
			"garnish":     []string{"Lime Wheel"},
		},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/cocktails", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created recipes.Document
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.ID == 0 || created.Title != "Daiquiri" {
		t.Fatalf("unexpected create response: %+v", created)
	}
	if len(created.Instructions) != 2 || created.Instructions[0] != "Shake" {
		t.Fatalf("unexpected instructions: %v", created.Instructions)
	}
	if len(created.Metadata.Garnish) != 1 || created.Metadata.Garnish[0] != "Lime Wheel" {
		t.Fatalf("unexpected garnish: %v", created.Metadata.Garnish)
	}

	// Show
	showReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/cocktails/%d", created.ID), nil)
	showW := httptest.NewRecorder()
	CocktailResource(showW, showReq)
	if showW.Code != http.StatusOK {
		t.Fatalf("expected status 200 for show, got %d", showW.Code)
	}
	var shown recipes.Document
	if err := json.Unmarshal(showW.Body.Bytes(), &shown); err != nil {
		t.Fatalf("failed to decode show response: %v", err)
	}
	if shown.ID != created.ID || len(shown.Ingredients) != 2 {
		t.Fatalf("unexpected show response: %+v", shown)
	}

	// List
	listReq := httptest.NewRequest(http.MethodGet, "/cocktails", nil)
	listW := httptest.NewRecorder()
	CocktailResource(listW, listReq)
	if listW.Code != http.StatusOK {
		t.Fatalf("expected status 200 for list, got %d", listW.Code)
	}
	var listed []recipes.Document
	if err := json.Unmarshal(listW.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected one cocktail in list, got %+v", listed)
	}
}

func TestCocktailShowNotFound(t *testing.T) {
	_, cleanup := withCocktailTestDatabase(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodGet, "/cocktails/424242", nil)
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCocktailInvalidIdentifier(t *testing.T) {
	_, cleanup := withCocktailTestDatabase(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodGet, "/cocktails/margarita", nil)
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCocktailCreateRejectsBadPayload(t *testing.T) {
	_, cleanup := withCocktailTestDatabase(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodPost, "/cocktails", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCocktailCreateRejectsMissingTitle(t *testing.T) {
	_, cleanup := withCocktailTestDatabase(t)
	t.Cleanup(cleanup)

	body, _ := json.Marshal(map[string]any{"ingredients": []map[string]any{{"name": "Rum"}}})
	req := httptest.NewRequest(http.MethodPost, "/cocktails", bytes.NewReader(body))
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCocktailMethodNotAllowed(t *testing.T) {
	_, cleanup := withCocktailTestDatabase(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodDelete, "/cocktails", nil)
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}

func TestCocktailWithoutDatabase(t *testing.T) {
	originalDB := database
	originalRepo := repository
	Configure(nil)
	t.Cleanup(func() {
		database = originalDB
		repository = originalRepo
	})

	req := httptest.NewRequest(http.MethodGet, "/cocktails", nil)
	w := httptest.NewRecorder()
	CocktailResource(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}
