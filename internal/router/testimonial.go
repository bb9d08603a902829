package router

import (
	"net/http"

	"nextskill/internal/catalog"
	"nextskill/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func TestimonialRoutes(store *catalog.Store) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequireCatalog(store))

	router.Get("/", getTestimonialsHandler(store))

	return router
}

// GET: /
func getTestimonialsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, store.Testimonials())
	}
}
