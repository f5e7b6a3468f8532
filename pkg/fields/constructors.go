package fields

import (
	"time"

	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/validate"
)

// New builds a field of the given kind. Kind defaults are applied first and
// options are layered on top: every field trims its input, Required prepends
// a Required validator and Date appends its parse filter and validator after
// the user supplied ones.
func New(kind Kind, key string, opts ...Option) *Field {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	name := cfg.name
	if name == "" {
		name = key
	}

	f := &Field{
		Kind:          kind,
		Key:           key,
		Name:          name,
		InputType:     cfg.inputType,
		Attrs:         cfg.attrs.Clone(),
		Label:         html.NewLabel(cfg.label, cfg.labelAttrs),
		LabelPosition: cfg.labelPosition,
		Wrapped:       !cfg.unwrapped,
		Required:      cfg.required,
		Choices:       append([]Choice(nil), cfg.choices...),
		Options:       cloneGroups(cfg.options),
		ButtonMode:    cfg.buttonMode,
		DateLayout:    cfg.dateLayout,
	}
	if f.Attrs == nil {
		f.Attrs = html.Attributes{}
	}
	if cfg.hasValue {
		f.Value = cfg.value
	}

	f.Filters = append([]filter.Filter{filter.Trim()}, cfg.filters...)
	if cfg.required {
		f.Attrs["required"] = true
		f.Validators = append(f.Validators, validate.Required())
	}
	f.Validators = append(f.Validators, cfg.validators...)

	switch kind {
	case KindDate:
		if f.DateLayout == "" {
			f.DateLayout = time.DateOnly
		}
		f.Filters = append(f.Filters, filter.Date(f.DateLayout))
		f.Validators = append(f.Validators, validate.Date(f.DateLayout))
	case KindSubmit:
		if f.Value == nil {
			f.Value = f.LabelText()
		}
	}
	return f
}

// Input builds a generic <input> with an explicit type attribute.
func Input(key, typ string, opts ...Option) *Field {
	return New(KindInput, key, append([]Option{WithInputType(typ)}, opts...)...)
}

// Text builds an <input type="text">.
func Text(key string, opts ...Option) *Field { return New(KindText, key, opts...) }

// Password builds an <input type="password">.
func Password(key string, opts ...Option) *Field { return New(KindPassword, key, opts...) }

// Date builds an <input type="date"> whose value is parsed into time.Time.
func Date(key string, opts ...Option) *Field { return New(KindDate, key, opts...) }

// Email builds an <input type="email">.
func Email(key string, opts ...Option) *Field { return New(KindEmail, key, opts...) }

// File builds an <input type="file">. Its value is never rendered.
func File(key string, opts ...Option) *Field { return New(KindFile, key, opts...) }

// Hidden builds an <input type="hidden">.
func Hidden(key string, opts ...Option) *Field { return New(KindHidden, key, opts...) }

// Submit builds a submit control whose value defaults to the label text.
func Submit(key string, opts ...Option) *Field { return New(KindSubmit, key, opts...) }

// Button builds a <button> showing the label text.
func Button(key string, opts ...Option) *Field { return New(KindButton, key, opts...) }

// Textarea builds a <textarea>.
func Textarea(key string, opts ...Option) *Field { return New(KindTextarea, key, opts...) }

// Select builds a <select>.
func Select(key string, opts ...Option) *Field { return New(KindSelect, key, opts...) }

// Radio builds a group of radio inputs, one per choice.
func Radio(key string, opts ...Option) *Field { return New(KindRadio, key, opts...) }

// Checkbox builds a group of checkbox inputs, one per choice.
func Checkbox(key string, opts ...Option) *Field { return New(KindCheckbox, key, opts...) }
