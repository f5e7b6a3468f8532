package form

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/session"
)

// Option configures a Form at construction.
type Option func(*config)

type config struct {
	name           string
	method         string
	action         string
	attrs          html.Attributes
	validators     []Validator
	valuesProvider ValuesProvider
	session        session.Store
	multipart      bool
	logger         *zap.Logger
	extra          []*fields.Field
}

// WithName overrides the form name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = strings.TrimSpace(name)
	}
}

// WithMethod sets the HTTP method. Methods other than GET and POST render as
// POST plus a hidden HTTP_REQUEST_METHOD override field.
func WithMethod(method string) Option {
	return func(c *config) {
		c.method = method
	}
}

// WithAction sets the action attribute.
func WithAction(action string) Option {
	return func(c *config) {
		c.action = action
	}
}

// WithAttrs merges extra attributes onto the <form> tag.
func WithAttrs(attrs html.Attributes) Option {
	return func(c *config) {
		c.attrs = c.attrs.Merge(attrs)
	}
}

// WithAttr sets a single <form> attribute.
func WithAttr(key string, value any) Option {
	return WithAttrs(html.Attributes{key: value})
}

// WithValidators appends form level validators, run after field validators.
func WithValidators(validators ...Validator) Option {
	return func(c *config) {
		c.validators = append(c.validators, validators...)
	}
}

// WithValuesProvider supplies dynamic choices for radio, checkbox and select
// fields.
func WithValuesProvider(provider ValuesProvider) Option {
	return func(c *config) {
		c.valuesProvider = provider
	}
}

// WithSession protects the form with a CSRF token kept in store.
func WithSession(store session.Store) Option {
	return func(c *config) {
		c.session = store
	}
}

// WithMultipart forces multipart/form-data encoding.
func WithMultipart() Option {
	return func(c *config) {
		c.multipart = true
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithField appends an instance specific field after the declared ones.
func WithField(field *fields.Field) Option {
	return func(c *config) {
		if field != nil {
			c.extra = append(c.extra, field)
		}
	}
}
