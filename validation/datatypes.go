package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Primitive schema.org data types understood by the validator.
const (
	TypeText     = "Text"
	TypeURL      = "URL"
	TypeDate     = "Date"
	TypeDateTime = "DateTime"
	TypeNumber   = "Number"
	TypeInteger  = "Integer"
	TypeBoolean  = "Boolean"
)

// dateLayouts are tried first; anything else goes through dateparse.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// matchesPrimitive reports whether value is acceptable for a primitive type.
// ok is false when typeName is not a primitive.
func matchesPrimitive(typeName string, value any) (match, ok bool) {
	switch typeName {
	case TypeText, TypeURL:
		_, isString := value.(string)
		return isString, true
	case TypeDate, TypeDateTime:
		s, isString := value.(string)
		return isString && isDate(s), true
	case TypeNumber, TypeInteger:
		return isNumeric(value), true
	case TypeBoolean:
		return isBoolean(value), true
	default:
		return false, false
	}
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	_, err := dateparse.ParseAny(s)
	return err == nil
}

func isNumeric(value any) bool {
	switch v := value.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return false
	}
}

func isBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case string:
		s := strings.ToLower(v)
		return s == "true" || s == "false"
	default:
		return false
	}
}
