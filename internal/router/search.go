package router

import (
	"net/http"

	"nextskill/internal/catalog"
	"nextskill/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SearchRoutes(store *catalog.Store) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequireCatalog(store))

	// Header search over courses and categories
	router.Get("/", searchHandler(store))

	return router
}

// GET: /?q={query}
func searchHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, store.Search(r.URL.Query().Get("q")))
	}
}
