package router

import (
	"errors"
	"net/http"

	"nextskill/internal/catalog"
	"nextskill/internal/middleware"
	"nextskill/internal/qerrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func CourseRoutes(store *catalog.Store) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequireCatalog(store))

	// Filtered course cards
	router.With(middleware.FilterCtx()).Get("/", getCoursesHandler(store))

	// Course detail
	router.With(middleware.CourseCtx()).Get("/{courseID}", getCourseHandler(store))

	return router
}

// GET: /?search={search}&category={category}
func getCoursesHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := middleware.GetFilterState(r)
		render.JSON(w, r, store.Cards(state))
	}
}

// GET: /{courseID}
func getCourseHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, err := store.Course(middleware.GetCourseID(r))
		if err != nil {
			if errors.Is(err, qerrors.CourseNotFoundError) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, course)
	}
}
