package models

type Testimonial struct {
	Quote string `json:"quote" mapstructure:"quote"`
	Name  string `json:"name" mapstructure:"name"`
	Role  string `json:"role" mapstructure:"role"`
	Image string `json:"image" mapstructure:"image"`
}
