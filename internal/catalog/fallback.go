package catalog

import "nextskill/internal/models"

// FallbackCategories returns the built-in categories used whenever categories.json cannot be
// fetched or does not hold a non-empty array. Every call returns a fresh copy.
func FallbackCategories() []models.Category {
	return []models.Category{
		{
			ID:          "web-development",
			Name:        "Web Development",
			Description: "Learn to build modern websites and web applications",
			Icon:        "🌐",
			Color:       "#007bff",
			Courses:     []string{"web-dev"},
		},
		{
			ID:          "database",
			Name:        "Database",
			Description: "Master database design, development, and management",
			Icon:        "🗄️",
			Color:       "#28a745",
			Courses:     []string{"database-dev"},
		},
		{
			ID:          "devops",
			Name:        "DevOps",
			Description: "Automate development and operations workflows",
			Icon:        "⚙️",
			Color:       "#ffc107",
			Courses:     []string{"devops"},
		},
		{
			ID:          "data-science",
			Name:        "DataScience",
			Description: "Analyze data and build machine learning models",
			Icon:        "📊",
			Color:       "#dc3545",
			Courses:     []string{"data-science"},
		},
	}
}
