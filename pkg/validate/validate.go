// Package validate provides validators that inspect a filtered field value
// and report pass or fail with a human readable message. Every validator
// attached to a field runs, even after an earlier failure, so callers receive
// the complete list of problems in one pass.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-form/pkg/html"
)

// Field is the context a validator receives alongside the value.
type Field interface {
	FieldName() string
	LabelText() string
}

// Result is the outcome of a single validator run.
type Result struct {
	Passed  bool
	Message string
}

// Pass is the successful Result.
func Pass() Result {
	return Result{Passed: true}
}

// Fail builds a failed Result carrying message verbatim.
func Fail(message string) Result {
	return Result{Message: message}
}

// Failf builds a failed Result with a formatted message.
func Failf(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Validator checks one value.
type Validator interface {
	Validate(value any, field Field) Result
}

// Func adapts a function into a Validator.
type Func func(value any, field Field) Result

// Validate delegates to the function.
func (fn Func) Validate(value any, field Field) Result {
	return fn(value, field)
}

// Run executes every validator in order and returns all results.
func Run(value any, field Field, validators ...Validator) []Result {
	results := make([]Result, 0, len(validators))
	for _, v := range validators {
		if v == nil {
			continue
		}
		results = append(results, v.Validate(value, field))
	}
	return results
}

// Messages extracts the failure messages from results, in order.
func Messages(results []Result) []string {
	var out []string
	for _, result := range results {
		if result.Passed {
			continue
		}
		out = append(out, result.Message)
	}
	return out
}

// IsEmpty reports whether value counts as "not provided": nil, empty strings,
// empty collections, false and the zero time.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case time.Time:
		return v.IsZero()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// DefaultRequiredMessage is reported by Required when no message is given.
const DefaultRequiredMessage = "Value is required"

// Required fails when the value is empty.
func Required(message ...string) Validator {
	msg := DefaultRequiredMessage
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return Func(func(value any, _ Field) Result {
		if IsEmpty(value) {
			return Fail(msg)
		}
		return Pass()
	})
}

// Length checks the rune length of string values. A negative max disables the
// upper bound. Empty values pass; combine with Required to reject them.
func Length(min, max int, message ...string) Validator {
	return Func(func(value any, _ Field) Result {
		if IsEmpty(value) {
			return Pass()
		}
		n := utf8.RuneCountInString(html.Stringify(value))
		if n < min || (max >= 0 && n > max) {
			if len(message) > 0 && message[0] != "" {
				return Fail(message[0])
			}
			if max < 0 {
				return Failf("Value must be at least %d characters", min)
			}
			return Failf("Value must be between %d and %d characters", min, max)
		}
		return Pass()
	})
}

// Regex fails when the stringified value does not match pattern. The pattern
// is compiled once; an invalid pattern panics at construction.
func Regex(pattern string, message ...string) Validator {
	expr := regexp.MustCompile(pattern)
	return Func(func(value any, _ Field) Result {
		if IsEmpty(value) {
			return Pass()
		}
		if expr.MatchString(html.Stringify(value)) {
			return Pass()
		}
		if len(message) > 0 && message[0] != "" {
			return Fail(message[0])
		}
		return Failf("Value does not match pattern %s", pattern)
	})
}

// Date accepts time.Time values and strings in layout.
func Date(layout string, message ...string) Validator {
	if layout == "" {
		layout = time.DateOnly
	}
	return Func(func(value any, _ Field) Result {
		switch v := value.(type) {
		case nil, time.Time, *time.Time:
			return Pass()
		case string:
			if v == "" {
				return Pass()
			}
			if _, err := time.Parse(layout, v); err == nil {
				return Pass()
			}
		}
		if len(message) > 0 && message[0] != "" {
			return Fail(message[0])
		}
		return Failf("%s does not match format %s", html.Stringify(value), layout)
	})
}

// Range checks numeric values (or numeric strings) fall inside [min, max].
func Range(min, max float64, message ...string) Validator {
	return Func(func(value any, _ Field) Result {
		if IsEmpty(value) {
			return Pass()
		}
		number, ok := toFloat(value)
		if !ok || number < min || number > max {
			if len(message) > 0 && message[0] != "" {
				return Fail(message[0])
			}
			return Failf("Value must be between %s and %s", html.Stringify(min), html.Stringify(max))
		}
		return Pass()
	})
}

// Choice fails when the value, or any element of a slice value, is not one
// of allowed. Comparison is on the stringified form.
func Choice(allowed ...any) Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[html.Stringify(a)] = struct{}{}
	}
	return Func(func(value any, _ Field) Result {
		if IsEmpty(value) {
			return Pass()
		}
		for _, item := range expand(value) {
			if _, ok := set[html.Stringify(item)]; !ok {
				return Failf("%s is not a valid choice", html.Stringify(item))
			}
		}
		return Pass()
	})
}

func toFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		var f float64
		if _, err := fmt.Sscan(strings.TrimSpace(rv.String()), &f); err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func expand(value any) []any {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, isBytes := value.([]byte); isBytes {
			return []any{value}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}
