package router

import (
	"net/http"

	"nextskill/internal/tutorials"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func TutorialRoutes(lib *tutorials.Library) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", getTutorialsHandler(lib))
	router.Get("/categories", getTutorialCategoriesHandler(lib))

	return router
}

func PlaylistRoutes(lib *tutorials.Library) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/featured", getFeaturedPlaylistHandler(lib))
	router.Get("/{slug}", getPlaylistHandler(lib))

	return router
}

// GET: /?category={categoryID}
func getTutorialsHandler(lib *tutorials.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, lib.Tutorials(r.URL.Query().Get("category")))
	}
}

// GET: /categories
func getTutorialCategoriesHandler(lib *tutorials.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, lib.Categories())
	}
}

// GET: /featured
func getFeaturedPlaylistHandler(lib *tutorials.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, lib.Featured())
	}
}

// GET: /{slug}
//
// Unknown slugs get the default playlist, like the playlist page does.
func getPlaylistHandler(lib *tutorials.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlist, _ := lib.Playlist(chi.URLParam(r, "slug"))
		render.JSON(w, r, playlist)
	}
}
