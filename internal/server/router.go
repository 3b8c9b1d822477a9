package server

import (
	"context"
	"net/http"

	"barkeep/internal/handlers"
	applog "barkeep/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/cocktails", handlers.CocktailResource)
	mux.HandleFunc("/cocktails/", handlers.CocktailResource)
	applog.Debug(context.Background(), "route registered", "path", "/cocktails")
	return mux
}
