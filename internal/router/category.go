package router

import (
	"net/http"

	"nextskill/internal/catalog"
	"nextskill/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func CategoryRoutes(store *catalog.Store) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequireCatalog(store))

	router.Get("/", getCategoriesHandler(store))

	return router
}

// GET: /
func getCategoriesHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, store.Categories())
	}
}
