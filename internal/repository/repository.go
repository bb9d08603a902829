package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nextskill/internal/catalog"
	"nextskill/internal/models"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Source fetches a named data resource ("courses", "categories", ...) and returns its parsed
// JSON value. Array resources come back as []interface{}.
type Source interface {
	Fetch(ctx context.Context, name string) (interface{}, error)
}

// Loader reads the catalog data files from a Source.
type Loader struct {
	source Source

	// refreshLock keeps refreshes from applying snapshots out of order.
	refreshLock *sync.Mutex
}

func NewLoader(source Source) *Loader {
	return &Loader{
		source:      source,
		refreshLock: &sync.Mutex{},
	}
}

// Load fetches courses, categories and testimonials concurrently and joins them into a
// Snapshot. A courses failure fails the load. Category problems of any kind are replaced by
// the fallback categories, and a testimonials failure leaves that list empty.
func (l *Loader) Load(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{
		ID: uuid.New().String(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		courses, err := l.loadCourses(gctx)
		if err != nil {
			return err
		}
		snap.Courses = courses
		return nil
	})

	g.Go(func() error {
		categories, err := l.loadCategories(gctx)
		if err != nil {
			glog.Warningf("categories data is empty or invalid, using fallback categories: %v\n", err)
			snap.Categories = catalog.FallbackCategories()
			snap.FallbackCategories = true
			return nil
		}
		snap.Categories = categories
		return nil
	})

	g.Go(func() error {
		testimonials, err := l.loadTestimonials(gctx)
		if err != nil {
			glog.Warningf("error loading testimonials: %v\n", err)
			testimonials = []models.Testimonial{}
		}
		snap.Testimonials = testimonials
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.LoadedAt = time.Now()
	glog.Infof("loaded catalog snapshot %s: %d courses, %d categories\n", snap.ID, len(snap.Courses), len(snap.Categories))

	return snap, nil
}

func (l *Loader) loadCourses(ctx context.Context) ([]models.Course, error) {
	raw, err := l.source.Fetch(ctx, models.CoursesResource)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}

	courses, err := DecodeCourses(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	return courses, nil
}

func (l *Loader) loadCategories(ctx context.Context) ([]models.Category, error) {
	raw, err := l.source.Fetch(ctx, models.CategoriesResource)
	if err != nil {
		return nil, err
	}

	return DecodeCategories(raw)
}

func (l *Loader) loadTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	raw, err := l.source.Fetch(ctx, models.TestimonialsResource)
	if err != nil {
		return nil, err
	}

	var testimonials []models.Testimonial
	if err := DecodeList(raw, &testimonials); err != nil {
		return nil, err
	}

	return testimonials, nil
}

// Refresh loads a new snapshot into store. On failure the error is recorded on the store and
// the previously loaded catalog, if any, stays in place. Concurrent refreshes run one at a time.
func (l *Loader) Refresh(ctx context.Context, store *catalog.Store) error {
	l.refreshLock.Lock()
	defer l.refreshLock.Unlock()

	snap, err := l.Load(ctx)
	if err != nil {
		glog.Errorf("error loading catalog: %v\n", err)
		store.Fail(err)
		return err
	}

	store.Apply(snap)
	return nil
}
