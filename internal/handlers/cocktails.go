package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "barkeep/internal/log"
	"barkeep/internal/recipes"
)

// CocktailResource handles the recipe endpoints: create and list on
// /cocktails, show on /cocktails/{id}.
func CocktailResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "cocktail request without database")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/cocktails")
	path = strings.Trim(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			listCocktails(w, r)
		case http.MethodPost:
			createCocktail(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	idValue, err := strconv.ParseUint(path, 10, 64)
	if err != nil {
		applog.Debug(r.Context(), "invalid cocktail identifier", "identifier", path, "error", err)
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		showCocktail(w, r, uint(idValue))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func createCocktail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input recipes.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		applog.Debug(ctx, "invalid cocktail create payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	document, err := repository.Create(ctx, input)
	if err != nil {
		if errors.Is(err, recipes.ErrInvalidInput) {
			applog.Debug(ctx, "cocktail validation failed", "error", err)
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		applog.Error(ctx, "failed to create cocktail", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to create cocktail")
		return
	}

	applog.Info(ctx, "cocktail created", "id", document.ID, "title", document.Title)
	writeJSON(w, http.StatusCreated, document)
}

func listCocktails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documents, err := repository.List(ctx)
	if err != nil {
		applog.Error(ctx, "failed to list cocktails", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load cocktails")
		return
	}

	writeJSON(w, http.StatusOK, documents)
}

func showCocktail(w http.ResponseWriter, r *http.Request, id uint) {
	ctx := r.Context()

	document, err := repository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, recipes.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		applog.Error(ctx, "failed to load cocktail", "error", err, "id", id)
		writeJSONError(w, http.StatusInternalServerError, "unable to load cocktail")
		return
	}

	writeJSON(w, http.StatusOK, document)
}
