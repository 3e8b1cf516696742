package shopify

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is a product (or nested variant/image/option) exactly as Shopify
// returned it. Every accessor takes a default and never panics on a missing or
// oddly typed key.
type Record map[string]any

// ProductsResponse represents the response from products API
type ProductsResponse struct {
	Products []Record `json:"products"`
}

// Has reports whether key is present and not null.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the value at key rendered as text. Numbers keep their JSON
// spelling, null and missing keys return def.
func (r Record) String(key, def string) string {
	if text, ok := textValue(r[key]); ok {
		return text
	}
	return def
}

// Int returns the integer value at key, or def when missing or not a whole number.
func (r Record) Int(key string, def int64) int64 {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil && f == math.Trunc(f) {
			return int64(f)
		}
	case float64:
		if val == math.Trunc(val) {
			return int64(val)
		}
	case int:
		return int64(val)
	case int64:
		return val
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return i
		}
	}
	return def
}

// Record returns the nested object at key, or nil.
func (r Record) Record(key string) Record {
	return asRecord(r[key])
}

// Records returns the nested array of objects at key. Elements that are not
// objects come back as empty records so positions are preserved.
func (r Record) Records(key string) []Record {
	var items []any
	switch val := r[key].(type) {
	case []Record:
		return val
	case []map[string]any:
		out := make([]Record, len(val))
		for i := range val {
			out[i] = Record(val[i])
		}
		return out
	case []any:
		items = val
	default:
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec := asRecord(item)
		if rec == nil {
			rec = Record{}
		}
		out = append(out, rec)
	}
	return out
}

// Strings returns the nested array at key as text values.
func (r Record) Strings(key string) []string {
	var items []any
	switch val := r[key].(type) {
	case []string:
		return val
	case []any:
		items = val
	default:
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := textValue(item); ok {
			out = append(out, text)
		}
	}
	return out
}

func textValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	}
	return "", false
}

func asRecord(v any) Record {
	switch val := v.(type) {
	case Record:
		return val
	case map[string]any:
		return Record(val)
	}
	return nil
}
