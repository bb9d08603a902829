package catalog

import (
	"strings"

	"nextskill/internal/models"
)

// Matches reports whether a course is visible under the given search term and category.
//
// The category must equal course.Category exactly; an empty category selects everything. A
// non-empty search term must be a case-insensitive substring of the title, the description, or
// one of the skills.
func Matches(course models.Course, searchTerm string, selectedCategory string) bool {
	categoryMatch := selectedCategory == "" || course.Category == selectedCategory
	if !categoryMatch {
		return false
	}

	if searchTerm == "" {
		return true
	}

	return matchesSearch(course, strings.ToLower(searchTerm))
}

func matchesSearch(course models.Course, term string) bool {
	if strings.Contains(strings.ToLower(course.Title), term) ||
		strings.Contains(strings.ToLower(course.Description), term) {
		return true
	}

	for _, skill := range course.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}

	return false
}

// Filter returns a new slice with the courses matching state, in their original order.
func Filter(courses []models.Course, state models.FilterState) []models.Course {
	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if Matches(course, state.SearchTerm, state.SelectedCategory) {
			filtered = append(filtered, course)
		}
	}

	return filtered
}
