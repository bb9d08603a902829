package models

// Category is a single entry of categories.json. Name is the value courses refer to in their
// Category field.
type Category struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
	Icon        string `json:"icon" mapstructure:"icon"`
	Color       string `json:"color" mapstructure:"color"`
	// Courses lists course ids for display only. Filtering never reads it.
	Courses []string `json:"courses" mapstructure:"courses"`
}
