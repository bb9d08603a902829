package analytics

import (
	"sort"

	"nextskill/internal/models"
)

// GenerateCatalogAnalytics summarizes courses and flags course categories that no category
// name matches. Does not modify its inputs.
func GenerateCatalogAnalytics(courses []models.Course, categories []models.Category) *models.CatalogAnalytics {
	analytics := &models.CatalogAnalytics{
		NumCourses:          len(courses),
		CoursesPerCategory:  make(map[string]int),
		UnmatchedCategories: make([]string, 0),
	}

	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.Name] = true
	}

	var ratings, prices []float64
	for _, course := range courses {
		if course.IsOpen() {
			analytics.NumOpenCourses++
		} else {
			analytics.NumClosedCourses++
		}

		if analytics.CoursesPerCategory[course.Category] == 0 && !known[course.Category] {
			analytics.UnmatchedCategories = append(analytics.UnmatchedCategories, course.Category)
		}
		analytics.CoursesPerCategory[course.Category]++

		if course.Rating != nil {
			ratings = append(ratings, *course.Rating)
		}
		if course.Price != nil && course.Price.Numeric {
			prices = append(prices, course.Price.Amount)
		}
	}

	sort.Strings(analytics.UnmatchedCategories)
	analytics.Rating = CalculatePercentiles(ratings)
	analytics.Price = CalculatePercentiles(prices)

	return analytics
}

// CalculatePercentiles returns the P50, P90 and P99 of data using linear interpolation between
// closest ranks. The input slice is not reordered.
func CalculatePercentiles(data []float64) models.Percentiles {
	if len(data) == 0 {
		return models.Percentiles{}
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	calculatePercentile := func(percentile float64) float64 {
		rank := percentile / 100 * float64(len(sorted)-1)
		rankInt := int(rank)

		// If the rank is an integer, return the value at that index
		if rank == float64(rankInt) {
			return sorted[rankInt]
		}

		// Otherwise, linearly interpolate
		baseline := sorted[rankInt]
		interpolation := (rank - float64(rankInt)) * (sorted[rankInt+1] - sorted[rankInt])

		return baseline + interpolation
	}

	return models.Percentiles{
		P50: calculatePercentile(50),
		P90: calculatePercentile(90),
		P99: calculatePercentile(99),
	}
}
