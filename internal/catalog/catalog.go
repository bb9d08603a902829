package catalog

import (
	"sync"
	"time"

	"nextskill/internal/models"
	"nextskill/internal/qerrors"
)

// Course cards fall back to these when a course names no known category.
const (
	defaultCategoryIcon  = "📚"
	defaultCategoryColor = "#6c757d"
)

// Store holds the courses and categories of one catalog load and serves read-only views of
// them. A Store is created empty, filled with Load or Apply, and queried concurrently.
type Store struct {
	lock *sync.RWMutex

	courses      []models.Course
	categories   []models.Category
	testimonials []models.Testimonial

	loaded   bool
	loadErr  error
	snapshot models.SnapshotInfo
}

// NewStore creates an empty store. Queries fail with CoursesUnavailableError until a load.
func NewStore() *Store {
	return &Store{
		lock:         &sync.RWMutex{},
		courses:      []models.Course{},
		categories:   []models.Category{},
		testimonials: []models.Testimonial{},
	}
}

// Load replaces the held courses and categories wholesale.
func (s *Store) Load(courses []models.Course, categories []models.Category) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.load(courses, categories)
}

// Apply loads every list of a snapshot and records its metadata.
func (s *Store) Apply(snap *models.Snapshot) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.load(snap.Courses, snap.Categories)
	s.testimonials = append([]models.Testimonial{}, snap.Testimonials...)
	s.snapshot.ID = snap.ID
	s.snapshot.LoadedAt = snap.LoadedAt
	s.snapshot.FallbackCategories = snap.FallbackCategories
}

func (s *Store) load(courses []models.Course, categories []models.Category) {
	s.courses = append([]models.Course{}, courses...)
	s.categories = append([]models.Category{}, categories...)
	s.loaded = true
	s.loadErr = nil
	s.snapshot = models.SnapshotInfo{
		LoadedAt:      time.Now(),
		NumCourses:    len(courses),
		NumCategories: len(categories),
	}
}

// Fail records a failed load. Data from an earlier successful load stays in place.
func (s *Store) Fail(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.loadErr = err
}

// Err returns the error of the last load attempt, or nil if it succeeded.
func (s *Store) Err() error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.loadErr
}

// Ready returns nil once the store holds a catalog, and the reason it does not otherwise.
func (s *Store) Ready() error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.loaded {
		return nil
	}
	if s.loadErr != nil {
		return s.loadErr
	}
	return qerrors.CoursesUnavailableError
}

// Filter computes the courses visible under state. The result is a new slice.
func (s *Store) Filter(state models.FilterState) []models.Course {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return Filter(s.courses, state)
}

// Cards computes the filtered courses decorated with their category icon and color.
func (s *Store) Cards(state models.FilterState) []models.CourseCard {
	s.lock.RLock()
	defer s.lock.RUnlock()

	filtered := Filter(s.courses, state)
	cards := make([]models.CourseCard, 0, len(filtered))
	for _, c := range filtered {
		cat := s.categoryFor(c)
		cards = append(cards, models.CourseCard{
			Course:        c,
			CategoryIcon:  cat.Icon,
			CategoryColor: cat.Color,
		})
	}

	return cards
}

// Courses returns a copy of every loaded course.
func (s *Store) Courses() []models.Course {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]models.Course{}, s.courses...)
}

// Categories returns a copy of the loaded categories.
func (s *Store) Categories() []models.Category {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]models.Category{}, s.categories...)
}

// Testimonials returns a copy of the loaded testimonials.
func (s *Store) Testimonials() []models.Testimonial {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]models.Testimonial{}, s.testimonials...)
}

// Course gets the course with the given id.
func (s *Store) Course(id string) (models.Course, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}

	return models.Course{}, qerrors.CourseNotFoundError
}

// CategoryFor returns the category whose name equals course.Category, or a placeholder category
// carrying only the default icon and color.
func (s *Store) CategoryFor(course models.Course) models.Category {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.categoryFor(course)
}

func (s *Store) categoryFor(course models.Course) models.Category {
	for _, cat := range s.categories {
		if cat.Name == course.Category {
			return cat
		}
	}

	return models.Category{Name: course.Category, Icon: defaultCategoryIcon, Color: defaultCategoryColor}
}

// Search runs the header search over the loaded courses and categories.
func (s *Store) Search(query string) []models.SearchResult {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return SearchAll(s.courses, s.categories, query)
}

// Snapshot describes the currently loaded catalog.
func (s *Store) Snapshot() models.SnapshotInfo {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.snapshot
}
