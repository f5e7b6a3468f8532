package html

import (
	"errors"
	"fmt"
	stdhtml "html"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Attributes maps HTML attribute names to values. Supported values are nil,
// bool, strings, numbers, time.Time and fmt.Stringer implementations.
type Attributes map[string]any

// Render serializes the attributes as ` key="value"` pairs sorted by key. The
// result carries a leading space when at least one pair is emitted so it can
// be appended directly after a tag name.
func (a Attributes) Render() string {
	flat := a.Flatten()
	if flat == "" {
		return ""
	}
	return " " + flat
}

// Flatten serializes the attributes without the leading space. nil, false and
// empty string values are omitted; true renders as key="key".
func (a Attributes) Flatten() string {
	if len(a) == 0 {
		return ""
	}

	keys := make([]string, 0, len(a))
	for key := range a {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value, ok := attributeValue(key, a[key])
		if !ok {
			continue
		}
		parts = append(parts, key+`="`+stdhtml.EscapeString(value)+`"`)
	}
	return strings.Join(parts, " ")
}

// Clone returns a shallow copy. A nil receiver yields an empty, writable map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge returns a copy of a with every entry from extras applied on top.
func (a Attributes) Merge(extras ...Attributes) Attributes {
	out := a.Clone()
	for _, extra := range extras {
		for key, value := range extra {
			out[key] = value
		}
	}
	return out
}

// Has reports whether key is present with a value that would be rendered.
func (a Attributes) Has(key string) bool {
	value, ok := a[key]
	if !ok {
		return false
	}
	_, ok = attributeValue(key, value)
	return ok
}

// String returns the rendered value for key, or "" when absent.
func (a Attributes) String(key string) string {
	value, ok := attributeValue(key, a[key])
	if !ok {
		return ""
	}
	return value
}

func attributeValue(key string, value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return key, true
	default:
		out := Stringify(v)
		if out == "" {
			return "", false
		}
		return out, true
	}
}

var errMalformedAttributes = errors.New("html: malformed attribute string")

// Parse reads a string produced by Render or Flatten back into Attributes.
// Every value is returned as a string; boolean attributes therefore come back
// as key="key".
func Parse(raw string) (Attributes, error) {
	out := Attributes{}
	rest := strings.TrimSpace(raw)
	for rest != "" {
		eq := strings.Index(rest, `="`)
		if eq <= 0 {
			return nil, fmt.Errorf("%w: %q", errMalformedAttributes, rest)
		}
		key := rest[:eq]
		rest = rest[eq+2:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated value for %q", errMalformedAttributes, key)
		}
		out[key] = stdhtml.UnescapeString(rest[:end])
		rest = strings.TrimLeft(rest[end+1:], " ")
	}
	return out, nil
}

// Stringify converts an arbitrary value into the text used for attribute
// values, option comparison and element content. nil becomes "".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.DateTime)
	case *time.Time:
		if v == nil {
			return ""
		}
		return Stringify(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Escape escapes text for use as element content.
func Escape(text string) string {
	return stdhtml.EscapeString(text)
}
