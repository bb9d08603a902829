package router

import (
	"context"
	"net/http"

	"nextskill/internal/catalog"
	"nextskill/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

// Refresher reloads the catalog held by a store.
type Refresher interface {
	Refresh(ctx context.Context, store *catalog.Store) error
}

func CatalogRoutes(store *catalog.Store, refresher Refresher) *chi.Mux {
	router := chi.NewRouter()

	// Metadata about the loaded snapshot
	router.Get("/", getCatalogHandler(store))

	// Manual retry after a failed load
	router.Post("/reload", reloadCatalogHandler(store, refresher))

	return router
}

type catalogResponse struct {
	models.SnapshotInfo
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

func newCatalogResponse(store *catalog.Store) catalogResponse {
	resp := catalogResponse{
		SnapshotInfo: store.Snapshot(),
		Loaded:       store.Ready() == nil,
	}
	if err := store.Err(); err != nil {
		resp.Error = err.Error()
	}

	return resp
}

// GET: /
func getCatalogHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, newCatalogResponse(store))
	}
}

// POST: /reload
func reloadCatalogHandler(store *catalog.Store, refresher Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := refresher.Refresh(r.Context(), store); err != nil {
			glog.Warningf("manual catalog reload failed: %v\n", err)
			render.Status(r, http.StatusBadGateway)
		}

		render.JSON(w, r, newCatalogResponse(store))
	}
}
