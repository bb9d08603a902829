package middleware

import (
	"context"
	"net/http"

	"nextskill/internal/models"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const (
	filterStateKey contextKey = "filterState"
	courseIDKey    contextKey = "courseID"
)

// FilterCtx reads the "search" and "category" query parameters into a FilterState on the
// request context.
func FilterCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			state := models.NewFilterState(query.Get("search"), query.Get("category"))

			ctx := context.WithValue(r.Context(), filterStateKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetFilterState returns the FilterState set by FilterCtx, or the empty state.
func GetFilterState(r *http.Request) models.FilterState {
	state, _ := r.Context().Value(filterStateKey).(models.FilterState)
	return state
}

// CourseCtx sets the "courseID" URL param on the request context.
func CourseCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			courseID := chi.URLParam(r, "courseID")

			ctx := context.WithValue(r.Context(), courseIDKey, courseID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCourseID returns the course id set by CourseCtx.
func GetCourseID(r *http.Request) string {
	id, _ := r.Context().Value(courseIDKey).(string)
	return id
}

// Readiness is implemented by stores that can report whether their data is loaded.
type Readiness interface {
	Ready() error
}

// CoursesUnavailableMessage is shown when the course data could not be loaded.
const CoursesUnavailableMessage = "Failed to load courses. Please try again later."

// RequireCatalog rejects requests with 503 until the catalog has been loaded.
func RequireCatalog(store Readiness) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := store.Ready(); err != nil {
				http.Error(w, CoursesUnavailableMessage, http.StatusServiceUnavailable)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
