package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-form/pkg/form"
)

// ErrorMapping splits an error payload into field-level and form-level
// messages keyed by form field keys.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload normalises server error payloads (dotted paths, JSON
// pointers, "name[]" style keys) onto the field keys of f. Unknown paths are
// treated as form-level errors so messages are not lost. Paths are visited in
// sorted order.
func MapErrorPayload(f *form.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if f == nil || len(payload) == 0 {
		return mapping
	}

	keys := make(map[string]string)
	for _, field := range f.Fields() {
		keys[field.Key] = field.Key
		keys[strings.TrimSuffix(field.Name, "[]")] = field.Key
	}

	paths := make([]string, 0, len(payload))
	for rawPath := range payload {
		paths = append(paths, rawPath)
	}
	sort.Strings(paths)

	for _, rawPath := range paths {
		normalized := normalizeMessages(payload[rawPath])
		if len(normalized) == 0 {
			continue
		}
		key, ok := matchField(rawPath, keys)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[key] = append(mapping.Fields[key], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// ApplyErrors merges mapping into f.Errors, labelling entries the same way
// Form.IsValid does.
func ApplyErrors(f *form.Form, mapping ErrorMapping) {
	if f == nil {
		return
	}
	if f.Errors == nil {
		f.Errors = map[string]form.FieldErrors{}
	}
	for key, messages := range mapping.Fields {
		field, ok := f.Field(key)
		if !ok {
			continue
		}
		current := f.Errors[key]
		current.Label = field.LabelText()
		current.Messages = MergeFormErrors(current.Messages, messages...)
		f.Errors[key] = current
	}
	if len(mapping.Form) > 0 {
		current := f.Errors[form.FormErrorKey]
		current.Label = f.Name
		current.Messages = MergeFormErrors(current.Messages, mapping.Form...)
		f.Errors[form.FormErrorKey] = current
	}
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// matchField resolves raw against the known keys: the full dotted path first,
// then progressively shorter suffixes ("body.owner.email" tries
// "owner.email" and then "email").
func matchField(raw string, keys map[string]string) (string, bool) {
	if isFormLevelKey(raw) {
		return "", false
	}
	segments := parsePathSegments(raw)
	for i := range segments {
		candidate := strings.Join(segments[i:], ".")
		if key, ok := keys[candidate]; ok {
			return key, true
		}
	}
	return "", false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimLeft(clean, "#/.$")
	}
	clean = strings.NewReplacer("[]", "", "[", ".", "]", "").Replace(clean)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		if isIndex(segment) {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func isIndex(segment string) bool {
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", form.FormErrorKey, "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
