package form

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/binding"
	"github.com/goliatone/go-form/pkg/fields"
)

// BindOption configures Bind.
type BindOption func(*bindConfig)

type bindConfig struct {
	mapping   binding.Mapping
	noHydrate bool
	ignored   []string
}

// WithMapping maps field keys onto object paths.
func WithMapping(mapping binding.Mapping) BindOption {
	return func(c *bindConfig) {
		c.mapping = mapping
	}
}

// WithoutHydrate skips reading the object into the form; values only flow
// back to the object after a successful IsValid.
func WithoutHydrate() BindOption {
	return func(c *bindConfig) {
		c.noHydrate = true
	}
}

// IgnoreFields excludes fields from binding, data assignment and validation.
func IgnoreFields(keys ...string) BindOption {
	return func(c *bindConfig) {
		c.ignored = append(c.ignored, keys...)
	}
}

type boundObject struct {
	obj     binding.Object
	mapping binding.Mapping
}

// Bind links the form to obj. Unless WithoutHydrate is given the current
// object values are read into the fields. Mapped paths must resolve; an
// unmapped field whose same-named entry is absent is left untouched.
func (f *Form) Bind(obj binding.Object, opts ...BindOption) error {
	if obj == nil {
		return errors.New("form: bind: nil object")
	}
	cfg := bindConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f.bound = &boundObject{obj: obj, mapping: cfg.mapping}
	f.ignored = map[string]struct{}{}
	for _, key := range cfg.ignored {
		f.ignored[key] = struct{}{}
	}
	f.logger.Debug("form bound",
		zap.String("form", f.Name),
		zap.Bool("hydrate", !cfg.noHydrate),
		zap.Strings("ignored", cfg.ignored),
	)
	if cfg.noHydrate {
		return nil
	}
	return f.hydrate()
}

func (f *Form) hydrate() error {
	for _, field := range f.bindable() {
		_, mapped := f.bound.mapping[field.Key]
		path := f.bound.mapping.PathFor(field.Key)
		value, err := f.bound.obj.GetPath(path)
		if err != nil {
			if !mapped && errors.Is(err, binding.ErrPathNotFound) {
				continue
			}
			return fmt.Errorf("form: hydrate %q: %w", field.Key, err)
		}
		field.SetValue(value)
	}
	return nil
}

func (f *Form) writeBack() error {
	for _, field := range f.bindable() {
		path := f.bound.mapping.PathFor(field.Key)
		if err := f.bound.obj.SetPath(path, field.Value); err != nil {
			return fmt.Errorf("form: write %q: %w", field.Key, err)
		}
	}
	f.logger.Debug("form values written to bound object", zap.String("form", f.Name))
	return nil
}

// bindable lists the fields that carry data: ignored fields, the CSRF token
// and submit/button controls are excluded.
func (f *Form) bindable() []*fields.Field {
	out := make([]*fields.Field, 0, len(f.fields))
	for _, field := range f.fields {
		if f.isIgnored(field.Key) || field.Key == f.csrfKey {
			continue
		}
		switch field.Kind {
		case fields.KindSubmit, fields.KindButton:
			continue
		}
		out = append(out, field)
	}
	return out
}
