package router

import (
	"net/http"

	"nextskill/internal/analytics"
	"nextskill/internal/catalog"
	"nextskill/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func AnalyticsRoutes(store *catalog.Store) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequireCatalog(store))

	router.Get("/", getAnalyticsHandler(store))

	return router
}

// GET: /
//
// Computed on every request; the catalog is small and read-only between loads.
func getAnalyticsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, analytics.GenerateCatalogAnalytics(store.Courses(), store.Categories()))
	}
}
