package repository

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"nextskill/internal/catalog"
	"nextskill/internal/models"
	"nextskill/internal/qerrors"
	"nextskill/internal/static"
)

const coursesJSON = `[
	{"id":"c1","title":"Intro to SQL","description":"Learn databases","skills":["SQL","MySQL"],"category":"Database","status":"Open","image":"sql.png","rating":4.5,"reviews":10,"price":"19.99"}
]`

// fakeSource answers from a map of parsed values or errors.
type fakeSource struct {
	mu      sync.Mutex
	values  map[string]interface{}
	errs    map[string]error
	fetched []string
}

func (f *fakeSource) Fetch(ctx context.Context, name string) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetched = append(f.fetched, name)
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	return f.values[name], nil
}

func sqlCourseRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":          "c1",
		"title":       "Intro to SQL",
		"description": "Learn databases",
		"skills":      []interface{}{"SQL", "MySQL"},
		"category":    "Database",
		"status":      "Open",
	}
}

func TestLoadFromEmbeddedData(t *testing.T) {
	loader := NewLoader(NewFileSource(static.Data()))

	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected embedded data to load, got %v", err)
	}

	if len(snap.Courses) == 0 {
		t.Error("Expected embedded courses")
	}
	if snap.FallbackCategories {
		t.Error("Expected embedded categories to be used")
	}
	if len(snap.Testimonials) == 0 {
		t.Error("Expected embedded testimonials")
	}
	if snap.ID == "" || snap.LoadedAt.IsZero() {
		t.Errorf("Expected snapshot id and load time, got %q and %v", snap.ID, snap.LoadedAt)
	}

	for _, c := range snap.Courses {
		found := false
		for _, cat := range snap.Categories {
			if cat.Name == c.Category {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected course %q to reference a known category, got %q", c.ID, c.Category)
		}
	}
}

const pricedCoursesJSON = `[
	{"id":"c1","title":"Intro to SQL","description":"Learn databases","skills":["SQL","MySQL"],"category":"Database","status":"Open","image":"sql.png","rating":4.5,"reviews":10,"price":"19.99"},
	{"id":"c2","title":"Git Basics","category":"DevOps","status":"Open","price":"Free"},
	{"id":"c3","title":"Docker Deep Dive","category":"DevOps","status":"Open","price":24}
]`

func TestLoadDecodesOptionalFields(t *testing.T) {
	fsys := fstest.MapFS{
		"courses.json":    {Data: []byte(pricedCoursesJSON)},
		"categories.json": {Data: []byte(`[{"id":"database","name":"Database"}]`)},
	}

	snap, err := NewLoader(NewFileSource(fsys)).Load(context.Background())
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	c := snap.Courses[0]
	if c.Rating == nil || *c.Rating != 4.5 {
		t.Errorf("Expected rating 4.5, got %v", c.Rating)
	}
	if c.Reviews == nil || *c.Reviews != 10 {
		t.Errorf("Expected 10 reviews, got %v", c.Reviews)
	}
	if c.Price == nil || *c.Price != models.NewPrice(19.99) {
		t.Errorf("Expected price 19.99 from a string, got %v", c.Price)
	}
	if !reflect.DeepEqual(c.Skills, []string{"SQL", "MySQL"}) {
		t.Errorf("Expected skills [SQL MySQL], got %v", c.Skills)
	}
	if c.Instructor != "" {
		t.Errorf("Expected no instructor, got %q", c.Instructor)
	}

	if len(snap.Courses) != 3 {
		t.Fatalf("Expected 3 courses, got %d", len(snap.Courses))
	}
	if p := snap.Courses[1].Price; p == nil || p.Numeric || p.Label != "Free" {
		t.Errorf("Expected the Free label to be kept, got %+v", p)
	}
	if p := snap.Courses[2].Price; p == nil || *p != models.NewPrice(24) {
		t.Errorf("Expected price 24, got %+v", p)
	}
	if snap.Courses[1].Rating != nil || snap.Courses[1].Reviews != nil {
		t.Errorf("Expected no rating or reviews, got %v %v", snap.Courses[1].Rating, snap.Courses[1].Reviews)
	}

	// testimonials.json is missing from the file system.
	if snap.Testimonials == nil || len(snap.Testimonials) != 0 {
		t.Errorf("Expected an empty testimonials list, got %#v", snap.Testimonials)
	}
}

func TestLoadCategoryFallback(t *testing.T) {
	testCases := []struct {
		name  string
		value interface{}
		err   error
	}{
		{"empty array", []interface{}{}, nil},
		{"null", nil, nil},
		{"object", map[string]interface{}{"id": "database"}, nil},
		{"string entries", []interface{}{"Database"}, nil},
		{"fetch rejection", nil, errors.New("connection refused")},
		{"missing file", nil, qerrors.ResourceNotFoundError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{
				values: map[string]interface{}{
					models.CoursesResource:    []interface{}{sqlCourseRecord()},
					models.CategoriesResource: tc.value,
				},
				errs: map[string]error{},
			}
			if tc.err != nil {
				src.errs[models.CategoriesResource] = tc.err
			}

			snap, err := NewLoader(src).Load(context.Background())
			if err != nil {
				t.Fatalf("Expected load to succeed, got %v", err)
			}
			if !snap.FallbackCategories {
				t.Error("Expected the fallback flag to be set")
			}
			if !reflect.DeepEqual(snap.Categories, catalog.FallbackCategories()) {
				t.Errorf("Expected fallback categories, got %+v", snap.Categories)
			}
		})
	}
}

func TestLoadCoursesFailure(t *testing.T) {
	fetchErr := errors.New("503 from origin")
	src := &fakeSource{
		values: map[string]interface{}{},
		errs:   map[string]error{models.CoursesResource: fetchErr},
	}

	snap, err := NewLoader(src).Load(context.Background())
	if snap != nil {
		t.Errorf("Expected no snapshot, got %+v", snap)
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("Expected the fetch error to be surfaced, got %v", err)
	}

	courseFetches := 0
	for _, name := range src.fetched {
		if name == models.CoursesResource {
			courseFetches++
		}
	}
	if courseFetches != 1 {
		t.Errorf("Expected exactly one courses fetch, got %d", courseFetches)
	}
}

func TestDecodeCoursesValidation(t *testing.T) {
	testCases := []struct {
		name     string
		raw      interface{}
		expected error
	}{
		{"not an array", map[string]interface{}{}, qerrors.InvalidPayloadError},
		{"null", nil, qerrors.InvalidPayloadError},
		{"missing id", []interface{}{map[string]interface{}{"title": "x"}}, qerrors.InvalidCourseError},
		{"missing title", []interface{}{map[string]interface{}{"id": "x"}}, qerrors.InvalidCourseError},
		{"duplicate id", []interface{}{sqlCourseRecord(), sqlCourseRecord()}, qerrors.DuplicateCourseError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCourses(tc.raw)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestDecodeCoursesEmptyArray(t *testing.T) {
	courses, err := DecodeCourses([]interface{}{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if courses == nil || len(courses) != 0 {
		t.Errorf("Expected an empty list, got %#v", courses)
	}
}

func TestDecodeCategories(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"id":          "database",
			"name":        "Database",
			"description": "Master databases",
			"icon":        "🗄️",
			"color":       "#28a745",
			"courses":     []interface{}{"database-dev"},
		},
	}

	categories, err := DecodeCategories(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []models.Category{{
		ID:          "database",
		Name:        "Database",
		Description: "Master databases",
		Icon:        "🗄️",
		Color:       "#28a745",
		Courses:     []string{"database-dev"},
	}}
	if !reflect.DeepEqual(categories, expected) {
		t.Errorf("Expected %+v, got %+v", expected, categories)
	}

	_, err = DecodeCategories([]interface{}{})
	if !errors.Is(err, qerrors.InvalidCategoriesError) {
		t.Errorf("Expected InvalidCategoriesError, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	fsys := fstest.MapFS{
		"courses.json": {Data: []byte(coursesJSON)},
		"broken.json":  {Data: []byte(`[{"id":`)},
	}
	src := NewFileSource(fsys)

	raw, err := src.Fetch(context.Background(), "courses")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if list, ok := raw.([]interface{}); !ok || len(list) != 1 {
		t.Errorf("Expected a one element array, got %#v", raw)
	}

	_, err = src.Fetch(context.Background(), "categories")
	if !errors.Is(err, qerrors.ResourceNotFoundError) {
		t.Errorf("Expected ResourceNotFoundError, got %v", err)
	}

	_, err = src.Fetch(context.Background(), "broken")
	if err == nil || !strings.Contains(err.Error(), "broken.json") {
		t.Errorf("Expected a parse error naming the file, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Fetch(ctx, "courses"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestDocumentRecord(t *testing.T) {
	data := map[string]interface{}{"title": "Intro to SQL"}

	record := documentRecord("c1", data)
	if record["id"] != "c1" || record["title"] != "Intro to SQL" {
		t.Errorf("Expected id and title, got %v", record)
	}
	if _, ok := data["id"]; ok {
		t.Error("Expected the document data to be left untouched")
	}

	record = documentRecord("doc-id", map[string]interface{}{"id": "own-id"})
	if record["id"] != "own-id" {
		t.Errorf("Expected the stored id to win, got %v", record["id"])
	}
}

// countingSource records how many courses fetches overlap.
type countingSource struct {
	mu        sync.Mutex
	active    int
	maxActive int
	calls     int
}

func (c *countingSource) Fetch(ctx context.Context, name string) (interface{}, error) {
	if name != models.CoursesResource {
		return nil, qerrors.ResourceNotFoundError
	}

	c.mu.Lock()
	c.active++
	c.calls++
	if c.active > c.maxActive {
		c.maxActive = c.active
	}
	c.mu.Unlock()

	time.Sleep(10 * time.Millisecond)

	c.mu.Lock()
	c.active--
	c.mu.Unlock()

	return []interface{}{sqlCourseRecord()}, nil
}

func TestRefreshRunsOneAtATime(t *testing.T) {
	src := &countingSource{}
	loader := NewLoader(src)
	store := catalog.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := loader.Refresh(context.Background(), store); err != nil {
				t.Errorf("Expected refresh to succeed, got %v", err)
			}
		}()
	}
	wg.Wait()

	if src.calls != 4 {
		t.Errorf("Expected 4 courses fetches, got %d", src.calls)
	}
	if src.maxActive != 1 {
		t.Errorf("Expected refreshes not to overlap, got %d at once", src.maxActive)
	}
	if err := store.Ready(); err != nil {
		t.Errorf("Expected the store to be loaded, got %v", err)
	}
}
