package qerrors

import "errors"

var (
	// Course errors
	CourseNotFoundError     = errors.New("course not found")
	InvalidCourseError      = errors.New("invalid course record")
	DuplicateCourseError    = errors.New("duplicate course id")
	CoursesUnavailableError = errors.New("courses have not been loaded")

	// Category errors
	InvalidCategoriesError = errors.New("categories data is empty or invalid")

	// Source errors
	ResourceNotFoundError = errors.New("resource not found")
	InvalidPayloadError   = errors.New("resource is not a JSON array")

	// Tutorial errors
	PlaylistNotFoundError = errors.New("playlist not found")
)
