// Package mapper converts loosely typed Firestore child records into
// destination rows, applying type coercion and per-kind defaults.
package mapper

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// String returns the trimmed string at key, or def when the value is
// missing, not a string, or empty.
func String(data map[string]any, key, def string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// FirstString returns the first non-empty string among keys, or def.
func FirstString(data map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		if s := String(data, key, ""); s != "" {
			return s
		}
	}
	return def
}

// Float coerces the value at key to float64. Firestore may hand back
// float64, int64 or int depending on the stored value; the web app also
// stored some amounts as strings ("12.50"), which are parsed as decimals.
// Anything unparseable yields def.
func Float(data map[string]any, key string, def float64) float64 {
	v, ok := data[key]
	if !ok || v == nil {
		return def
	}
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return d.InexactFloat64()
	default:
		return def
	}
}

// Int coerces the value at key to int, truncating floats. Unparseable or
// missing values yield def.
func Int(data map[string]any, key string, def int) int {
	v, ok := data[key]
	if !ok || v == nil {
		return def
	}
	switch val := v.(type) {
	case int64:
		return int(val)
	case int:
		return val
	case float64:
		return int(val)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return int(d.IntPart())
	default:
		return def
	}
}

// Bool returns the bool at key, or def when missing or not a bool.
func Bool(data map[string]any, key string, def bool) bool {
	v, ok := data[key]
	if !ok || v == nil {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// timeLayouts are tried in order when a date arrives as a string. The web
// app wrote ISO strings with and without timezone, and bare dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time extracts a timestamp from key. Native Firestore timestamps decode to
// time.Time; strings are tried against the known layouts; integers are
// treated as Unix milliseconds (JavaScript Date.now()). The second return
// reports whether a usable timestamp was found.
func Time(data map[string]any, key string) (time.Time, bool) {
	v, ok := data[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(val)); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.UnixMilli(val), true
	case float64:
		return time.UnixMilli(int64(val)), true
	default:
		return time.Time{}, false
	}
}

// TimeOr returns the timestamp at key, or fallback when absent or
// unparseable. Used for required dates, with "now" as the fallback.
func TimeOr(data map[string]any, key string, fallback time.Time) time.Time {
	if t, ok := Time(data, key); ok {
		return t
	}
	return fallback
}

// TimePtr returns the timestamp at key, or nil when absent or unparseable.
// Used for optional dates such as due dates and target dates.
func TimePtr(data map[string]any, key string) *time.Time {
	if t, ok := Time(data, key); ok {
		return &t
	}
	return nil
}

// Strings returns the list of strings at key. Non-string elements are
// dropped; a missing or malformed value yields an empty, non-nil slice so
// destination rows never carry a null list.
func Strings(data map[string]any, key string) []string {
	out := []string{}
	v, ok := data[key]
	if !ok || v == nil {
		return out
	}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StringPtr returns the non-empty string at key, or nil. Used for optional
// foreign keys that pass through verbatim.
func StringPtr(data map[string]any, key string) *string {
	if s := String(data, key, ""); s != "" {
		return &s
	}
	return nil
}
