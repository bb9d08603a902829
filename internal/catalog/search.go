package catalog

import (
	"strings"

	"nextskill/internal/models"
)

// SearchAll runs the header search: matching courses first, then categories whose name or
// description contains the query. An empty query yields no results.
func SearchAll(courses []models.Course, categories []models.Category, query string) []models.SearchResult {
	results := make([]models.SearchResult, 0)
	if query == "" {
		return results
	}

	q := strings.ToLower(query)
	for _, c := range courses {
		if !matchesSearch(c, q) {
			continue
		}
		results = append(results, models.SearchResult{
			Type:        models.ResultCourse,
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Category:    c.Category,
			Image:       c.Image,
		})
	}

	for _, cat := range categories {
		if !strings.Contains(strings.ToLower(cat.Name), q) && !strings.Contains(strings.ToLower(cat.Description), q) {
			continue
		}
		results = append(results, models.SearchResult{
			Type:        models.ResultCategory,
			ID:          cat.ID,
			Title:       cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
			Color:       cat.Color,
		})
	}

	return results
}
