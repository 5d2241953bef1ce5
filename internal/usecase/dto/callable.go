package dto

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"strconv"
)

// Payload returns the callable data as an object, or nil when it is absent
// or falsy. Non-object payloads become an empty object.
func Payload(data interface{}) map[string]interface{} {
	if !Truthy(data) {
		return nil
	}
	if m, ok := data.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// Truthy follows JSON-value truthiness: null, false, 0 and "" are false.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case json.Number:
		f, ok := numberValue(t)
		return ok && f != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func numberField(data map[string]interface{}, key string) *float64 {
	switch v := data[key].(type) {
	case float64:
		return &v
	case json.Number:
		if f, ok := numberValue(v); ok {
			return &f
		}
	}
	return nil
}

// numberValue converts a decoded JSON number; values out of float64 range
// become ±Inf the way a JavaScript JSON parser reads them.
func numberValue(n json.Number) (float64, bool) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func stringField(data map[string]interface{}, key string) *string {
	if v, ok := data[key].(string); ok {
		return &v
	}
	return nil
}
