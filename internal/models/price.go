package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is the price shown on a course card. Numeric prices, including numeric strings such as
// "49.99", set Amount. Anything else, such as "Free", is kept as Label and shown as written.
type Price struct {
	Amount  float64
	Label   string
	Numeric bool
}

// NewPrice returns a numeric price.
func NewPrice(amount float64) Price {
	return Price{Amount: amount, Numeric: true}
}

// ParsePrice builds a Price from a loosely typed JSON or Firestore value.
func ParsePrice(v interface{}) (Price, error) {
	switch p := v.(type) {
	case Price:
		return p, nil
	case float64:
		return NewPrice(p), nil
	case float32:
		return NewPrice(float64(p)), nil
	case int:
		return NewPrice(float64(p)), nil
	case int64:
		return NewPrice(float64(p)), nil
	case json.Number:
		if f, err := p.Float64(); err == nil {
			return NewPrice(f), nil
		}
		return Price{Label: p.String()}, nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err == nil {
			return NewPrice(f), nil
		}
		return Price{Label: p}, nil
	}

	return Price{}, fmt.Errorf("unsupported price value %v (%T)", v, v)
}

func (p Price) String() string {
	if p.Numeric {
		return strconv.FormatFloat(p.Amount, 'f', 2, 64)
	}
	return p.Label
}

// MarshalJSON writes numeric prices as numbers and labels as strings.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Numeric {
		return json.Marshal(p.Amount)
	}
	return json.Marshal(p.Label)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	parsed, err := ParsePrice(v)
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
