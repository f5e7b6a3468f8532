package fields

import (
	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/validate"
)

// Option customises a field at construction.
type Option func(*config)

type config struct {
	name          string
	inputType     string
	value         any
	hasValue      bool
	attrs         html.Attributes
	label         string
	labelAttrs    html.Attributes
	labelPosition LabelPosition
	unwrapped     bool
	filters       []filter.Filter
	validators    []validate.Validator
	required      bool
	choices       []Choice
	options       []OptionGroup
	buttonMode    bool
	dateLayout    string
}

// WithName overrides the HTML name attribute.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithValue sets the initial value.
func WithValue(value any) Option {
	return func(c *config) {
		c.value = value
		c.hasValue = true
	}
}

// WithLabel sets the label text.
func WithLabel(text string) Option {
	return func(c *config) {
		c.label = text
	}
}

// WithLabelAttrs merges attributes rendered on the <label> element.
func WithLabelAttrs(attrs html.Attributes) Option {
	return func(c *config) {
		c.labelAttrs = c.labelAttrs.Merge(attrs)
	}
}

// WithAttrs merges extra attributes rendered on the control.
func WithAttrs(attrs html.Attributes) Option {
	return func(c *config) {
		c.attrs = c.attrs.Merge(attrs)
	}
}

// WithAttr sets a single control attribute.
func WithAttr(key string, value any) Option {
	return WithAttrs(html.Attributes{key: value})
}

// WithID sets the id attribute.
func WithID(id string) Option {
	return WithAttr("id", id)
}

// WithClass sets the class attribute.
func WithClass(class string) Option {
	return WithAttr("class", class)
}

// WithPlaceholder sets the placeholder attribute.
func WithPlaceholder(text string) Option {
	return WithAttr("placeholder", text)
}

// WithFilters appends filters after the kind defaults.
func WithFilters(filters ...filter.Filter) Option {
	return func(c *config) {
		c.filters = append(c.filters, filters...)
	}
}

// WithValidators appends validators to the field.
func WithValidators(validators ...validate.Validator) Option {
	return func(c *config) {
		c.validators = append(c.validators, validators...)
	}
}

// Required marks the field as required: the control gains required="required"
// and a Required validator runs first.
func Required() Option {
	return func(c *config) {
		c.required = true
	}
}

// WithChoices sets the radio or checkbox (display, value) pairs.
func WithChoices(choices ...Choice) Option {
	return func(c *config) {
		c.choices = append(c.choices, choices...)
	}
}

// WithChoice adds a single value whose display text is the field label.
func WithChoice(value any) Option {
	return WithChoices(Choice{Value: value})
}

// WithOptions appends select option groups.
func WithOptions(groups ...OptionGroup) Option {
	return func(c *config) {
		c.options = append(c.options, groups...)
	}
}

// WithLabelPosition places the label text left or right of radio and
// checkbox inputs.
func WithLabelPosition(pos LabelPosition) Option {
	return func(c *config) {
		c.labelPosition = pos
	}
}

// Unwrapped renders radio and checkbox labels as siblings of their inputs.
func Unwrapped() Option {
	return func(c *config) {
		c.unwrapped = true
	}
}

// ButtonMode renders a submit field as <button type="submit">.
func ButtonMode() Option {
	return func(c *config) {
		c.buttonMode = true
	}
}

// WithDateLayout sets the layout used by date parsing and validation.
func WithDateLayout(layout string) Option {
	return func(c *config) {
		c.dateLayout = layout
	}
}

// WithInputType sets the type attribute of a generic input.
func WithInputType(typ string) Option {
	return func(c *config) {
		c.inputType = typ
	}
}
