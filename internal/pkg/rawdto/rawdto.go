// Package rawdto reads loosely typed backend DTOs decoded into map[string]any.
// Each lookup walks a list of accepted field names, highest precedence first,
// and returns the first usable value.
package rawdto

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func String(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := StringValue(raw[k]); s != "" {
			return s
		}
	}
	return ""
}

// StringValue renders scalars as text. Floats never use exponent notation so
// numeric ids survive.
func StringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int, int64, bool:
		return fmt.Sprint(t)
	default:
		return ""
	}
}

// Float accepts numbers and numeric strings, including "30%" and "4,5".
func Float(raw map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch t := raw[k].(type) {
		case float64:
			return t, true
		case int:
			return float64(t), true
		case int64:
			return float64(t), true
		case string:
			s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "%"))
			if v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func Bool(raw map[string]any, keys ...string) (bool, bool) {
	for _, k := range keys {
		switch t := raw[k].(type) {
		case bool:
			return t, true
		case string:
			if v, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return v, true
			}
		}
	}
	return false, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time accepts RFC 3339 strings, zone-less ISO timestamps (read as UTC) and
// unix seconds or milliseconds.
func Time(raw map[string]any, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		switch t := raw[k].(type) {
		case string:
			s := strings.TrimSpace(t)
			for _, layout := range timeLayouts {
				if v, err := time.Parse(layout, s); err == nil {
					return v, true
				}
			}
		case float64:
			return unix(int64(t)), true
		case int64:
			return unix(t), true
		case int:
			return unix(int64(t)), true
		}
	}
	return time.Time{}, false
}

func unix(n int64) time.Time {
	if n > 1e12 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

func Object(raw map[string]any, keys ...string) (map[string]any, bool) {
	for _, k := range keys {
		if obj, ok := raw[k].(map[string]any); ok {
			return obj, true
		}
	}
	return nil, false
}

func Items(raw map[string]any, keys ...string) []map[string]any {
	for _, k := range keys {
		list, ok := raw[k].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
