package utils

import (
	"encoding/json"
	"strings"

	"github.com/brystmar/greeting-cards/internal/pkg/logger"
)

// ConvertToBool coerces an arbitrary input value into a canonical boolean.
// The wire format for checkbox-like fields is inconsistent across callers:
// sometimes "True"/"False" strings, sometimes 0/1 integers, sometimes native
// booleans. Every boolean-shaped column goes through this one function.
func ConvertToBool(input interface{}) bool {
	switch v := input.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "t", "y", "yes":
			return true
		}
		return false
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		// JSON numbers decode as float64
		return v == 1
	default:
		logger.Warning("ConvertToBool: unsupported type %T, setting value to false", input)
		return false
	}
}

// FlexBool is a boolean that accepts any of the wire representations
// handled by ConvertToBool when unmarshaled from JSON.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = FlexBool(ConvertToBool(v))
	return nil
}

// Bool returns the underlying boolean value.
func (b FlexBool) Bool() bool {
	return bool(b)
}
