package form

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/session"
)

const (
	// EnctypeURLEncoded is the default form encoding.
	EnctypeURLEncoded = "application/x-www-form-urlencoded"
	// EnctypeMultipart is used when the form carries file fields.
	EnctypeMultipart = "multipart/form-data"
	// MethodOverrideField carries the real method for PUT, PATCH or DELETE
	// forms submitted as POST.
	MethodOverrideField = "HTTP_REQUEST_METHOD"
	// FormErrorKey holds form level failures in Errors.
	FormErrorKey = "form"
)

// ErrDuplicateField is returned when adding a field whose key already exists.
var ErrDuplicateField = errors.New("form: duplicate field")

// FieldErrors are the failures reported for one field, or for the whole form
// under FormErrorKey.
type FieldErrors struct {
	Messages []string `json:"messages"`
	Label    string   `json:"label"`
}

// Validator inspects the whole form and returns failure messages.
type Validator interface {
	ValidateForm(f *Form) []string
}

// ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(f *Form) []string

// ValidateForm delegates to the function.
func (fn ValidatorFunc) ValidateForm(f *Form) []string {
	return fn(f)
}

// ValuesProvider resolves (display, value) pairs for multi-value fields.
type ValuesProvider interface {
	ValuesFor(fieldName string) []fields.Choice
}

// Form is a live form instance.
type Form struct {
	Name   string
	Method string
	Action string
	// HTTPRequestMethod is set when Method had to be downgraded to POST.
	HTTPRequestMethod string
	Attrs             html.Attributes
	Errors            map[string]FieldErrors

	fields     []*fields.Field
	index      map[string]int
	validators []Validator
	provider   ValuesProvider
	multipart  bool
	logger     *zap.Logger

	session        session.Store
	csrfKey        string
	submittedToken string

	bound   *boundObject
	ignored map[string]struct{}
}

// New creates an empty form named DefaultName unless WithName is given.
func New(opts ...Option) *Form {
	return newForm(nil, opts...)
}

// Multipart creates an empty form that submits as multipart/form-data.
func Multipart(opts ...Option) *Form {
	return newForm(nil, append(opts, WithMultipart())...)
}

func newForm(def *Definition, opts ...Option) *Form {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Form{
		Name:      def.Name(),
		Action:    "/",
		Attrs:     cfg.attrs.Clone(),
		Errors:    map[string]FieldErrors{},
		index:     map[string]int{},
		provider:  cfg.valuesProvider,
		multipart: cfg.multipart || def.Multipart(),
		logger:    cfg.logger,
		ignored:   map[string]struct{}{},
	}
	if cfg.name != "" {
		f.Name = cfg.name
	}
	if cfg.action != "" {
		f.Action = cfg.action
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	f.setMethod(cfg.method)
	f.validators = append(f.validators, cfg.validators...)

	for _, field := range def.Fields() {
		f.appendField(field)
	}
	for _, field := range cfg.extra {
		f.appendField(field.Clone())
	}
	if f.provider != nil {
		f.resolveValues()
	}
	if cfg.session != nil {
		f.protect(cfg.session)
	}
	return f
}

func (f *Form) setMethod(method string) {
	method = strings.ToUpper(strings.TrimSpace(method))
	switch method {
	case "", http.MethodPost:
		f.Method = http.MethodPost
	case http.MethodGet:
		f.Method = http.MethodGet
	default:
		f.Method = http.MethodPost
		f.HTTPRequestMethod = method
	}
}

func (f *Form) appendField(field *fields.Field) {
	if idx, ok := f.index[field.Key]; ok {
		f.fields[idx] = field
		return
	}
	f.index[field.Key] = len(f.fields)
	f.fields = append(f.fields, field)
}

// AddField appends a field to this instance only.
func (f *Form) AddField(field *fields.Field) error {
	if field == nil {
		return errors.New("form: nil field")
	}
	if _, ok := f.index[field.Key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, field.Key)
	}
	f.appendField(field)
	return nil
}

func (f *Form) resolveValues() {
	for _, field := range f.fields {
		if !field.Kind.MultiValue() {
			continue
		}
		choices := f.provider.ValuesFor(field.Key)
		if len(choices) == 0 {
			continue
		}
		switch field.Kind {
		case fields.KindSelect:
			field.Options = []fields.OptionGroup{fields.ChoicesToOptions(choices)}
		default:
			field.Choices = append([]fields.Choice(nil), choices...)
		}
	}
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.fields)
}

// Fields returns the live fields in render order.
func (f *Form) Fields() []*fields.Field {
	return append([]*fields.Field(nil), f.fields...)
}

// Field returns the field registered under key.
func (f *Form) Field(key string) (*fields.Field, bool) {
	idx, ok := f.index[key]
	if !ok {
		return nil, false
	}
	return f.fields[idx], true
}

// Value returns the current value of the field under key.
func (f *Form) Value(key string) any {
	field, ok := f.Field(key)
	if !ok {
		return nil
	}
	return field.Value
}

// Enctype derives the encoding from the field composition.
func (f *Form) Enctype() string {
	if f.multipart {
		return EnctypeMultipart
	}
	for _, field := range f.fields {
		if field.Kind == fields.KindFile {
			return EnctypeMultipart
		}
	}
	return EnctypeURLEncoded
}

// Logger returns the form logger.
func (f *Form) Logger() *zap.Logger {
	return f.logger
}

func (f *Form) isIgnored(key string) bool {
	_, ok := f.ignored[key]
	return ok
}
