package models

import (
	"strings"
	"time"
)

// Data resource names, shared by every source.
const (
	CoursesResource            = "courses"
	CategoriesResource         = "categories"
	TestimonialsResource       = "testimonials"
	TutorialCategoriesResource = "tutorial_categories"
	TutorialsResource          = "tutorials"
	PlaylistsResource          = "playlists"
)

// FilterState is the search text and selected category driving the visible course list.
type FilterState struct {
	// SearchTerm is always lowercased. Empty means no search filter.
	SearchTerm string `json:"searchTerm"`
	// SelectedCategory is matched against Course.Category. Empty means all categories.
	SelectedCategory string `json:"selectedCategory"`
}

// NewFilterState builds a FilterState from raw user input.
func NewFilterState(search, category string) FilterState {
	return FilterState{
		SearchTerm:       strings.ToLower(search),
		SelectedCategory: category,
	}
}

// Snapshot is one complete load of the catalog data files.
type Snapshot struct {
	ID           string        `json:"id"`
	LoadedAt     time.Time     `json:"loadedAt"`
	Courses      []Course      `json:"-"`
	Categories   []Category    `json:"-"`
	Testimonials []Testimonial `json:"-"`
	// FallbackCategories is set when Categories holds the built-in list.
	FallbackCategories bool `json:"fallbackCategories"`
}

// SnapshotInfo describes the snapshot currently held by a store.
type SnapshotInfo struct {
	ID                 string    `json:"id"`
	LoadedAt           time.Time `json:"loadedAt"`
	NumCourses         int       `json:"numCourses"`
	NumCategories      int       `json:"numCategories"`
	FallbackCategories bool      `json:"fallbackCategories"`
}

type SearchResultType string

const (
	ResultCourse   SearchResultType = "course"
	ResultCategory SearchResultType = "category"
)

// SearchResult is one hit of the header search. Title holds the course title or category name.
type SearchResult struct {
	Type        SearchResultType `json:"type"`
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category,omitempty"`
	Image       string           `json:"image,omitempty"`
	Icon        string           `json:"icon,omitempty"`
	Color       string           `json:"color,omitempty"`
}
