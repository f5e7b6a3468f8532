package fields

import (
	"errors"
	"reflect"
	"strings"

	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/validate"
)

// ErrNotImplemented is the panic value raised when a capability is invoked on
// a field whose kind does not provide it.
var ErrNotImplemented = errors.New("fields: capability not implemented")

// LabelPosition places label text relative to a radio or checkbox input.
type LabelPosition int

const (
	LabelLeft LabelPosition = iota
	LabelRight
)

// String returns "left" or "right".
func (p LabelPosition) String() string {
	if p == LabelRight {
		return "right"
	}
	return "left"
}

// ParseLabelPosition accepts "left" or "right"; anything else is left.
func ParseLabelPosition(raw string) LabelPosition {
	if strings.EqualFold(strings.TrimSpace(raw), "right") {
		return LabelRight
	}
	return LabelLeft
}

// Field is a single form control plus its current value.
type Field struct {
	Kind Kind
	// Key identifies the field inside a form and in bound data.
	Key string
	// Name is the HTML name attribute. It defaults to Key and may differ,
	// e.g. "tags[]" for array style checkboxes.
	Name string
	// InputType overrides the type attribute of KindInput fields.
	InputType string

	Value         any
	OriginalValue any

	Attrs         html.Attributes
	Label         *html.Label
	LabelPosition LabelPosition
	Wrapped       bool

	Filters    []filter.Filter
	Validators []validate.Validator
	Required   bool

	Choices    []Choice
	Options    []OptionGroup
	ButtonMode bool
	DateLayout string
}

// FieldName returns the HTML name of the field.
func (f *Field) FieldName() string {
	return f.Name
}

// LabelText returns the explicit label text or the field key.
func (f *Field) LabelText() string {
	if f.Label != nil && f.Label.Text != "" {
		return f.Label.Text
	}
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// HasLabel reports whether a label text was supplied explicitly.
func (f *Field) HasLabel() bool {
	return f.Label != nil && f.Label.Text != ""
}

// ID returns the id attribute, defaulting to the name without any "[]"
// suffix.
func (f *Field) ID() string {
	if id := f.Attrs.String("id"); id != "" {
		return id
	}
	return strings.TrimSuffix(f.Name, "[]")
}

// IsMultiple reports whether the field accepts a list of values: checkboxes
// with several choices, array style names and selects holding a slice.
func (f *Field) IsMultiple() bool {
	if strings.HasSuffix(f.Name, "[]") {
		return true
	}
	switch f.Kind {
	case KindCheckbox:
		return len(f.Choices) > 1
	case KindSelect:
		return filter.IsSlice(f.Value) || f.Attrs.Has("multiple")
	default:
		return false
	}
}

// SetValue stores raw as the original value and the filtered result as the
// current value.
func (f *Field) SetValue(raw any) {
	f.OriginalValue = raw
	f.Value = f.Filter(raw)
}

// Reset clears both the current and the original value.
func (f *Field) Reset() {
	f.OriginalValue = nil
	f.Value = nil
}

// Filter runs the filter pipeline left to right.
func (f *Field) Filter(raw any) any {
	value := raw
	if f.Kind == KindCheckbox && len(f.Choices) > 1 && value != nil && !filter.IsSlice(value) {
		value = []any{value}
	}
	return filter.Chain(value, f.Filters...)
}

// Validate runs every validator against value and returns all results.
func (f *Field) Validate(value any) []validate.Result {
	return validate.Run(value, f, f.Validators...)
}

// Errors validates the current value and returns the failure messages.
func (f *Field) Errors() []string {
	return validate.Messages(f.Validate(f.Value))
}

// Clone returns a deep copy the caller can mutate independently.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	out := *f
	out.Attrs = f.Attrs.Clone()
	out.Label = f.Label.Clone()
	out.Filters = append([]filter.Filter(nil), f.Filters...)
	out.Validators = append([]validate.Validator(nil), f.Validators...)
	out.Choices = append([]Choice(nil), f.Choices...)
	out.Options = cloneGroups(f.Options)
	out.Value = cloneValue(f.Value)
	out.OriginalValue = cloneValue(f.OriginalValue)
	return &out
}

// String renders the bare control.
func (f *Field) String() string {
	return f.Render()
}

// cloneValue copies slices, keeping their element type.
func cloneValue(value any) any {
	if !filter.IsSlice(value) {
		return value
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return value
	}
	if rv.IsNil() {
		return value
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface()
}
