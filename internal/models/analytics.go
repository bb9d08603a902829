package models

// Percentiles is a generic struct for storing percentiles for any distribution of data.
type Percentiles struct {
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// CatalogAnalytics summarizes the loaded catalog.
type CatalogAnalytics struct {
	NumCourses       int `json:"numCourses"`
	NumOpenCourses   int `json:"numOpenCourses"`
	NumClosedCourses int `json:"numClosedCourses"`

	// CoursesPerCategory is keyed by Course.Category, exactly as written in the course record.
	CoursesPerCategory map[string]int `json:"coursesPerCategory"`

	// UnmatchedCategories are Course.Category values that equal no Category.Name. Courses under
	// these names never show up when their category is selected.
	UnmatchedCategories []string `json:"unmatchedCategories"`

	// Rating only covers courses that carry the field, Price only numeric prices.
	Rating Percentiles `json:"rating"`
	Price  Percentiles `json:"price"`
}
