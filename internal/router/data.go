package router

import (
	"net/http"

	"nextskill/internal/catalog"
	"nextskill/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// DataFileRoutes serves the loaded catalog under the data file names the site pages fetch.
// categories.json carries the fallback categories when those were used.
func DataFileRoutes(store *catalog.Store) *chi.Mux {
	router := chi.NewRouter()

	// Guarded per route; the router is mounted at the site root and must 404 everything else.
	loaded := router.With(middleware.RequireCatalog(store))
	loaded.Get("/courses.json", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, store.Courses())
	})
	loaded.Get("/categories.json", getCategoriesHandler(store))
	loaded.Get("/testimonials.json", getTestimonialsHandler(store))

	return router
}
