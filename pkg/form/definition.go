package form

import (
	"github.com/goliatone/go-form/pkg/fields"
)

// DefaultName is used for forms created without a definition or name.
const DefaultName = "Form"

// Definition holds the prototype fields of a form type.
type Definition struct {
	name      string
	fields    []*fields.Field
	multipart bool
}

// Define declares a form type. Later fields with a duplicate key replace the
// earlier declaration in place.
func Define(name string, prototypes ...*fields.Field) *Definition {
	def := &Definition{name: name}
	for _, proto := range prototypes {
		def.add(proto)
	}
	return def
}

// DefineMultipart declares a form type that always submits as
// multipart/form-data.
func DefineMultipart(name string, prototypes ...*fields.Field) *Definition {
	def := Define(name, prototypes...)
	def.multipart = true
	return def
}

func (d *Definition) add(proto *fields.Field) {
	if proto == nil {
		return
	}
	clone := proto.Clone()
	for i, existing := range d.fields {
		if existing.Key == clone.Key {
			d.fields[i] = clone
			return
		}
	}
	d.fields = append(d.fields, clone)
}

// Name returns the declared form name.
func (d *Definition) Name() string {
	if d == nil || d.name == "" {
		return DefaultName
	}
	return d.name
}

// Multipart reports whether the definition forces multipart encoding.
func (d *Definition) Multipart() bool {
	return d != nil && d.multipart
}

// Fields returns copies of the prototype fields in declaration order.
func (d *Definition) Fields() []*fields.Field {
	if d == nil {
		return nil
	}
	out := make([]*fields.Field, len(d.fields))
	for i, proto := range d.fields {
		out[i] = proto.Clone()
	}
	return out
}

// New creates a form instance with freshly cloned fields.
func (d *Definition) New(opts ...Option) *Form {
	return newForm(d, opts...)
}
