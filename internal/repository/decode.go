package repository

import (
	"fmt"
	"reflect"

	"nextskill/internal/models"
	"nextskill/internal/qerrors"

	"github.com/mitchellh/mapstructure"
)

var priceType = reflect.TypeOf(models.Price{})

// decodePriceHook turns any price value into a models.Price so that labels like "Free" survive
// decoding.
func decodePriceHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != priceType {
		return data, nil
	}

	return models.ParsePrice(data)
}

// decode copies a loosely typed JSON value into out. Weak typing lets numbers arrive as
// strings ("4.5") and vice versa.
func decode(raw interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(decodePriceHook),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}

// DecodeList decodes a JSON array into out, which must point to a slice.
func DecodeList(raw interface{}, out interface{}) error {
	if _, ok := raw.([]interface{}); !ok {
		return qerrors.InvalidPayloadError
	}

	return decode(raw, out)
}

// DecodeCourses decodes and validates the courses payload. Every course needs an id and a
// title, and ids must be unique.
func DecodeCourses(raw interface{}) ([]models.Course, error) {
	var courses []models.Course
	if err := DecodeList(raw, &courses); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(courses))
	for i, c := range courses {
		if c.ID == "" || c.Title == "" {
			return nil, fmt.Errorf("%w: entry %d is missing an id or title", qerrors.InvalidCourseError, i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: %q", qerrors.DuplicateCourseError, c.ID)
		}
		seen[c.ID] = true
	}

	if courses == nil {
		courses = []models.Course{}
	}

	return courses, nil
}

// DecodeCategories decodes the categories payload. Anything other than a non-empty array of
// category objects is reported as InvalidCategoriesError.
func DecodeCategories(raw interface{}) ([]models.Category, error) {
	list, ok := raw.([]interface{})
	if !ok || len(list) == 0 {
		return nil, qerrors.InvalidCategoriesError
	}

	var categories []models.Category
	if err := decode(list, &categories); err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.InvalidCategoriesError, err)
	}

	return categories, nil
}
