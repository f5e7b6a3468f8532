package openapi

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-form/pkg/definition"
	"github.com/goliatone/go-form/pkg/html"
)

// SubmitKey is the key of the submit button appended to generated forms.
const SubmitKey = "submit"

// Fields longer than this render as a textarea.
const textareaThreshold = 255

// FormSpec converts the operation request body into a form declaration. Only
// object schemas are supported; read-only and nested object properties are
// skipped.
func (o Operation) FormSpec() (definition.FormSpec, error) {
	if o.Schema == nil {
		return definition.FormSpec{}, fmt.Errorf("openapi: operation %q has no request schema", o.ID)
	}
	properties, required := collectProperties(o.Schema)
	if len(properties) == 0 {
		return definition.FormSpec{}, fmt.Errorf("openapi: operation %q request body declares no properties", o.ID)
	}

	spec := definition.FormSpec{
		Name:      o.ID,
		Method:    o.Method,
		Action:    o.Path,
		Multipart: o.Multipart(),
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, multipart, ok := fieldSpec(name, properties[name], required[name])
		if !ok {
			continue
		}
		if multipart {
			spec.Multipart = true
		}
		spec.Fields = append(spec.Fields, field)
	}

	label := o.Summary
	if label == "" {
		label = "Submit"
	}
	spec.Fields = append(spec.Fields, definition.FieldSpec{
		Key:   submitKey(properties),
		Kind:  "submit",
		Label: label,
	})
	return spec, nil
}

// Definitions converts every operation into a definition document keyed by
// operation id. Operations whose bodies cannot become a form are skipped.
func (d *Document) Definitions() definition.Document {
	doc := definition.Document{Forms: make(map[string]definition.FormSpec)}
	for _, op := range d.Operations() {
		spec, err := op.FormSpec()
		if err != nil {
			continue
		}
		doc.Forms[op.ID] = spec
	}
	return doc
}

// Store builds a definition store from the document.
func (d *Document) Store() (*definition.Store, error) {
	store := definition.NewStore()
	if err := store.Add(d.Definitions(), d.Location()); err != nil {
		return nil, err
	}
	return store, nil
}

func collectProperties(schema *openapi3.Schema) (map[string]*openapi3.Schema, map[string]bool) {
	properties := make(map[string]*openapi3.Schema)
	required := make(map[string]bool)

	var walk func(s *openapi3.Schema)
	walk = func(s *openapi3.Schema) {
		if s == nil {
			return
		}
		for _, ref := range s.AllOf {
			if ref != nil {
				walk(ref.Value)
			}
		}
		for name, ref := range s.Properties {
			if ref == nil || ref.Value == nil {
				continue
			}
			properties[name] = ref.Value
		}
		for _, name := range s.Required {
			required[name] = true
		}
	}
	walk(schema)
	return properties, required
}

func fieldSpec(name string, prop *openapi3.Schema, required bool) (definition.FieldSpec, bool, bool) {
	if prop.ReadOnly {
		return definition.FieldSpec{}, false, false
	}

	field := definition.FieldSpec{
		Key:      name,
		Label:    prop.Title,
		Required: required,
		Value:    prop.Default,
	}
	if field.Label == "" {
		field.Label = humanize(name)
	}
	if prop.Description != "" {
		field.Attrs = map[string]any{"title": prop.Description}
	}

	multipart := false
	switch schemaType(prop) {
	case openapi3.TypeString:
		switch {
		case len(prop.Enum) > 0:
			field.Kind = "select"
			field.Options = []definition.OptionGroupSpec{{Options: enumChoices(prop.Enum)}}
			field.Validators = append(field.Validators, definition.ValidatorSpec{Type: "choice", Values: prop.Enum})
		case prop.Format == "email":
			field.Kind = "email"
		case prop.Format == "date":
			field.Kind = "date"
		case prop.Format == "password":
			field.Kind = "password"
		case prop.Format == "binary":
			field.Kind = "file"
			multipart = true
		case prop.MaxLength != nil && *prop.MaxLength > textareaThreshold:
			field.Kind = "textarea"
		default:
			field.Kind = "text"
		}
		if prop.Format != "binary" {
			field.Validators = append(field.Validators, stringValidators(prop)...)
		}
	case openapi3.TypeInteger, openapi3.TypeNumber:
		field.Kind = "text"
		field.InputType = "number"
		if schemaType(prop) == openapi3.TypeInteger {
			field.Filters = []string{"int"}
		} else {
			field.Filters = []string{"float"}
		}
		if prop.Min != nil || prop.Max != nil {
			field.Validators = append(field.Validators, definition.ValidatorSpec{
				Type: "range",
				Min:  prop.Min,
				Max:  prop.Max,
			})
		}
	case openapi3.TypeBoolean:
		field.Kind = "checkbox"
		field.Filters = []string{"bool"}
		field.Choices = []definition.ChoiceSpec{{Label: field.Label, Value: "true"}}
		field.Value = nil
		// A required boolean would force the box to be ticked.
		field.Required = false
	case openapi3.TypeArray:
		if prop.Items == nil || prop.Items.Value == nil || len(prop.Items.Value.Enum) == 0 {
			return definition.FieldSpec{}, false, false
		}
		field.Kind = "checkbox"
		field.Choices = enumChoices(prop.Items.Value.Enum)
		field.Validators = append(field.Validators, definition.ValidatorSpec{Type: "choice", Values: prop.Items.Value.Enum})
	default:
		return definition.FieldSpec{}, false, false
	}
	return field, multipart, true
}

func stringValidators(prop *openapi3.Schema) []definition.ValidatorSpec {
	var out []definition.ValidatorSpec
	if prop.MinLength > 0 || prop.MaxLength != nil {
		spec := definition.ValidatorSpec{Type: "length"}
		min := float64(prop.MinLength)
		spec.Min = &min
		if prop.MaxLength != nil {
			max := float64(*prop.MaxLength)
			spec.Max = &max
		}
		out = append(out, spec)
	}
	if prop.Pattern != "" {
		out = append(out, definition.ValidatorSpec{Type: "regex", Pattern: prop.Pattern})
	}
	return out
}

func enumChoices(values []any) []definition.ChoiceSpec {
	out := make([]definition.ChoiceSpec, 0, len(values))
	for _, v := range values {
		out = append(out, definition.ChoiceSpec{Label: html.Stringify(v), Value: v})
	}
	return out
}

func schemaType(s *openapi3.Schema) string {
	if s.Type == nil {
		if len(s.Enum) > 0 {
			return openapi3.TypeString
		}
		return ""
	}
	for _, t := range *s.Type {
		if t != "null" {
			return t
		}
	}
	return ""
}

func submitKey(properties map[string]*openapi3.Schema) string {
	key := SubmitKey
	for {
		if _, taken := properties[key]; !taken {
			return key
		}
		key = "_" + key
	}
}

// humanize turns "first_name" or "firstName" into "First name".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
