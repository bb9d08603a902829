package models

// CourseStatus is the enrollment state shown on a course card.
type CourseStatus string

const (
	// StatusOpen is the only open state; every other value is treated as closed.
	StatusOpen CourseStatus = "Open"
)

// Course is a single entry of courses.json.
type Course struct {
	ID          string       `json:"id" mapstructure:"id"`
	Title       string       `json:"title" mapstructure:"title"`
	Description string       `json:"description" mapstructure:"description"`
	Category    string       `json:"category" mapstructure:"category"`
	Skills      []string     `json:"skills" mapstructure:"skills"`
	Status      CourseStatus `json:"status" mapstructure:"status"`
	Image       string       `json:"image" mapstructure:"image"`

	// Optional card details. Nil when the record does not carry them.
	Instructor string   `json:"instructor,omitempty" mapstructure:"instructor"`
	Rating     *float64 `json:"rating,omitempty" mapstructure:"rating"`
	Reviews    *int     `json:"reviews,omitempty" mapstructure:"reviews"`
	Price      *Price   `json:"price,omitempty" mapstructure:"price"`
}

// IsOpen reports whether the course is accepting students.
func (c Course) IsOpen() bool {
	return c.Status == StatusOpen
}

// CourseCard is a course decorated with the icon and color of its category.
type CourseCard struct {
	Course
	CategoryIcon  string `json:"categoryIcon"`
	CategoryColor string `json:"categoryColor"`
}
