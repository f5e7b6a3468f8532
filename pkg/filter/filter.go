// Package filter provides value transformations applied to raw input before
// it is stored on a field. Filters never fail: a filter that cannot coerce a
// value hands it back unchanged so validators can reject it.
package filter

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Filter transforms a single value.
type Filter interface {
	Filter(value any) any
}

// Func adapts a function into a Filter.
type Func func(value any) any

// Filter delegates to the underlying function.
func (fn Func) Filter(value any) any {
	return fn(value)
}

// Chain applies filters left to right, each receiving the previous output.
func Chain(value any, filters ...Filter) any {
	for _, f := range filters {
		if f == nil {
			continue
		}
		value = f.Filter(value)
	}
	return value
}

// Trim strips surrounding whitespace from strings, including strings held in
// a slice. Other values pass through.
func Trim() Filter {
	return Func(func(value any) any {
		return mapStrings(value, strings.TrimSpace)
	})
}

// Upper upper-cases strings.
func Upper() Filter {
	return Func(func(value any) any {
		return mapStrings(value, strings.ToUpper)
	})
}

// Lower lower-cases strings.
func Lower() Filter {
	return Func(func(value any) any {
		return mapStrings(value, strings.ToLower)
	})
}

// Date parses strings using layout into time.Time. Empty strings become nil so
// an omitted date reads back as "no value".
func Date(layout string) Filter {
	if layout == "" {
		layout = time.DateOnly
	}
	return Func(func(value any) any {
		raw, ok := value.(string)
		if !ok {
			return value
		}
		if raw == "" {
			return nil
		}
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			return value
		}
		return parsed
	})
}

// Int parses numeric strings into int.
func Int() Filter {
	return Func(func(value any) any {
		raw, ok := value.(string)
		if !ok || raw == "" {
			return value
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return value
		}
		return parsed
	})
}

// Float parses numeric strings into float64.
func Float() Filter {
	return Func(func(value any) any {
		raw, ok := value.(string)
		if !ok || raw == "" {
			return value
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value
		}
		return parsed
	})
}

// Bool parses strings such as "1", "true", "on" into bool.
func Bool() Filter {
	return Func(func(value any) any {
		raw, ok := value.(string)
		if !ok {
			return value
		}
		switch strings.ToLower(raw) {
		case "on", "yes":
			return true
		case "off", "no", "":
			return false
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return value
		}
		return parsed
	})
}

// Default substitutes fallback when the incoming value is nil or "".
func Default(fallback any) Filter {
	return Func(func(value any) any {
		if value == nil {
			return fallback
		}
		if s, ok := value.(string); ok && s == "" {
			return fallback
		}
		return value
	})
}

func mapStrings(value any, fn func(string) string) any {
	switch v := value.(type) {
	case string:
		return fn(v)
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fn(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			if s, ok := item.(string); ok {
				out[i] = fn(s)
				continue
			}
			out[i] = item
		}
		return out
	default:
		return value
	}
}

// IsSlice reports whether value is a slice or array other than a string or
// byte slice.
func IsSlice(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case string, []byte:
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// ToSlice expands slices and arrays into []any. Scalars become a single
// element slice and nil becomes nil.
func ToSlice(value any) []any {
	if value == nil {
		return nil
	}
	if !IsSlice(value) {
		return []any{value}
	}
	rv := reflect.ValueOf(value)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
