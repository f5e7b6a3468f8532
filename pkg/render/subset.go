package render

import (
	"strings"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/form"
)

// FieldSubset restricts which fields a renderer emits. A field matches when
// its key is listed or its kind is listed. An empty subset matches every
// field.
type FieldSubset struct {
	Keys  []string
	Kinds []string
}

// ParseSubset reads comma separated key and kind lists, e.g. from CLI flags.
func ParseSubset(keys, kinds string) FieldSubset {
	return FieldSubset{
		Keys:  parseTokenList(keys),
		Kinds: parseTokenList(kinds),
	}
}

// Empty reports whether the subset matches everything.
func (s FieldSubset) Empty() bool {
	return len(s.Keys) == 0 && len(s.Kinds) == 0
}

// SelectFields returns the fields of f matching subset, in form order. The
// CSRF token field is always kept so protected submissions stay valid.
func SelectFields(f *form.Form, subset FieldSubset) []*fields.Field {
	if f == nil {
		return nil
	}
	all := f.Fields()
	if subset.Empty() {
		return all
	}

	keys := normaliseTokens(subset.Keys)
	kinds := normaliseTokens(subset.Kinds)

	out := make([]*fields.Field, 0, len(all))
	for _, field := range all {
		if field.Key == f.CSRFKey() {
			out = append(out, field)
			continue
		}
		if _, ok := keys[normaliseToken(field.Key)]; ok {
			out = append(out, field)
			continue
		}
		if _, ok := kinds[field.Kind.String()]; ok {
			out = append(out, field)
		}
	}
	return out
}

func normaliseTokens(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		if token := normaliseToken(value); token != "" {
			out[token] = struct{}{}
		}
	}
	return out
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func parseTokenList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
