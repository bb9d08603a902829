package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"nextskill/internal/catalog"
	"nextskill/internal/config"
	"nextskill/internal/firebase"
	"nextskill/internal/models"
	"nextskill/internal/repository"
	rtr "nextskill/internal/router"
	"nextskill/internal/static"
	"nextskill/internal/tutorials"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang/glog"
	"github.com/rs/cors"
)

// Server owns the catalog store, the loader that fills it and the tutorial library.
type Server struct {
	config  *config.ServerConfig
	store   *catalog.Store
	loader  *repository.Loader
	library *tutorials.Library

	// watcher is set when the catalog follows Firestore changes.
	watcher *repository.FirestoreSource
	closers []io.Closer
}

// New builds a server from cfg and loads the catalog once. A failed catalog load does not stop
// the server: course endpoints answer 503 until a reload succeeds.
func New(ctx context.Context, cfg *config.ServerConfig) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("missing or invalid configuration")
	}

	s := &Server{
		config: cfg,
		store:  catalog.NewStore(),
	}

	source, err := s.newSource(ctx)
	if err != nil {
		return nil, err
	}
	s.loader = repository.NewLoader(source)

	s.library, err = tutorials.Load(ctx, repository.NewFileSource(static.Data()))
	if err != nil {
		return nil, fmt.Errorf("error loading tutorials: %w", err)
	}

	if err := s.loader.Refresh(ctx, s.store); err != nil {
		glog.Errorf("❌ catalog unavailable until reloaded: %v\n", err)
	} else {
		glog.Infof("✅ Catalog loaded from %s source\n", cfg.DataSource)
	}

	return s, nil
}

func (s *Server) newSource(ctx context.Context) (repository.Source, error) {
	switch s.config.DataSource {
	case config.SourceEmbedded:
		return repository.NewFileSource(static.Data()), nil
	case config.SourceDirectory:
		return repository.NewDirSource(s.config.DataDir), nil
	case config.SourceHTTP:
		return repository.NewHTTPSource(s.config.DataBaseURL, s.config.FetchTimeout), nil
	case config.SourceFirestore:
		client, err := firebase.NewFirestoreClient(ctx, s.config.FirebaseProjectID, s.config.FirebaseCredentialsFile)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client)

		source := repository.NewFirestoreSource(client)
		if s.config.FirestoreWatch {
			s.watcher = source
		}
		return source, nil
	}

	return nil, fmt.Errorf("unknown data source %q", s.config.DataSource)
}

// Store returns the catalog store served by s.
func (s *Server) Store() *catalog.Store {
	return s.store
}

func (s *Server) Routes() *chi.Mux {
	compressor := middleware.NewCompressor(5, "application/json", "text/plain")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.Logger, // Log API Request Calls
		middleware.Recoverer,
		compressor.Handler,
	)

	router.Mount("/health", rtr.HealthRoutes())
	if s.config.ServeDataFiles {
		router.Mount("/", rtr.DataFileRoutes(s.store))
	}

	router.Route("/v1", func(r chi.Router) {
		r.Mount("/catalog", rtr.CatalogRoutes(s.store, s.loader))
		r.Mount("/courses", rtr.CourseRoutes(s.store))
		r.Mount("/categories", rtr.CategoryRoutes(s.store))
		r.Mount("/search", rtr.SearchRoutes(s.store))
		r.Mount("/testimonials", rtr.TestimonialRoutes(s.store))
		r.Mount("/analytics", rtr.AnalyticsRoutes(s.store))
		r.Mount("/tutorials", rtr.TutorialRoutes(s.library))
		r.Mount("/playlists", rtr.PlaylistRoutes(s.library))
	})

	return router
}

// Handler wraps the routes with CORS.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedHeaders: []string{"Content-Type"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	})

	return c.Handler(s.Routes())
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", s.config.Port),
		Handler: s.Handler(),
	}

	if s.watcher != nil {
		go s.watch(ctx)
	}

	errs := make(chan error, 1)
	go func() {
		glog.Infof("Server is listening on port %v\n", s.config.Port)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// watch reloads the catalog each time one of its Firestore collections changes.
func (s *Server) watch(ctx context.Context) {
	onChange := func(name string) {
		glog.Infof("%v collection changed, reloading catalog\n", name)
		if err := s.loader.Refresh(ctx, s.store); err != nil {
			glog.Warningf("catalog reload after %v change failed, keeping the previous catalog\n", name)
		}
	}

	err := s.watcher.Watch(ctx, onChange, models.CoursesResource, models.CategoriesResource, models.TestimonialsResource)
	if err != nil {
		glog.Errorf("❌ stopped watching firestore: %v\n", err)
	}
}

// Close releases the data source clients.
func (s *Server) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
