package render

import (
	"github.com/goliatone/go-form/pkg/form"
)

// RenderOptions describe per-request data that renderers apply on top of the
// form before producing output.
type RenderOptions struct {
	// Values pre-populates fields by key. Only the listed fields change; the
	// rest keep their current value.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field path.
	// Unknown paths are reported as form level errors.
	Errors map[string][]string
	// Hidden adds extra hidden inputs emitted before the closing tag.
	Hidden map[string]string
	// Subset restricts rendering to matching fields.
	Subset FieldSubset
	// Title is used by page level renderers.
	Title string
	// Theme and Variant select a theme manifest for renderers that support
	// theming.
	Theme   string
	Variant string
}

// Apply pushes option values and errors into f.
func Apply(f *form.Form, options RenderOptions) {
	if f == nil {
		return
	}
	for key, value := range options.Values {
		if field, ok := f.Field(key); ok {
			field.SetValue(value)
		}
	}
	if len(options.Errors) > 0 {
		ApplyErrors(f, MapErrorPayload(f, options.Errors))
	}
}
