package definition

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/validate"
)

// Build converts spec into a form definition plus the construction options
// (method, action, attributes, multipart) it declares.
func Build(id string, spec FormSpec) (*form.Definition, []form.Option, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		name = id
	}

	prototypes := make([]*fields.Field, 0, len(spec.Fields))
	seen := make(map[string]struct{}, len(spec.Fields))
	for i, fs := range spec.Fields {
		field, err := buildField(fs)
		if err != nil {
			return nil, nil, fmt.Errorf("definition: form %q field %d: %w", id, i, err)
		}
		if _, dup := seen[field.Key]; dup {
			return nil, nil, fmt.Errorf("definition: form %q declares duplicate field %q", id, field.Key)
		}
		seen[field.Key] = struct{}{}
		prototypes = append(prototypes, field)
	}

	var def *form.Definition
	if spec.Multipart {
		def = form.DefineMultipart(name, prototypes...)
	} else {
		def = form.Define(name, prototypes...)
	}

	var opts []form.Option
	if spec.Method != "" {
		opts = append(opts, form.WithMethod(spec.Method))
	}
	if spec.Action != "" {
		opts = append(opts, form.WithAction(spec.Action))
	}
	if len(spec.Attrs) > 0 {
		opts = append(opts, form.WithAttrs(html.Attributes(spec.Attrs)))
	}
	return def, opts, nil
}

func buildField(spec FieldSpec) (*fields.Field, error) {
	key := strings.TrimSpace(spec.Key)
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	kind, err := fields.ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	opts := []fields.Option{
		fields.WithName(spec.Name),
		fields.WithLabel(spec.Label),
		fields.WithLabelAttrs(html.Attributes(spec.LabelAttrs)),
		fields.WithAttrs(html.Attributes(spec.Attrs)),
		fields.WithLabelPosition(fields.ParseLabelPosition(spec.LabelPosition)),
		fields.WithDateLayout(spec.DateLayout),
		fields.WithInputType(spec.InputType),
	}
	if spec.Value != nil {
		opts = append(opts, fields.WithValue(spec.Value))
	}
	if spec.Required {
		opts = append(opts, fields.Required())
	}
	if spec.Unwrapped {
		opts = append(opts, fields.Unwrapped())
	}
	if spec.ButtonMode {
		opts = append(opts, fields.ButtonMode())
	}

	for _, name := range spec.Filters {
		f, err := parseFilter(name)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		opts = append(opts, fields.WithFilters(f))
	}
	for _, vs := range spec.Validators {
		v, err := parseValidator(vs)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		opts = append(opts, fields.WithValidators(v))
	}

	for _, choice := range spec.Choices {
		opts = append(opts, fields.WithChoices(fields.Choice{Label: choice.Label, Value: choice.Value}))
	}
	for _, group := range spec.Options {
		out := fields.OptionGroup{Label: group.Label}
		for _, opt := range group.Options {
			label := opt.Label
			if label == "" {
				label = html.Stringify(opt.Value)
			}
			out.Options = append(out.Options, fields.SelectOption{Value: opt.Value, Label: label})
		}
		opts = append(opts, fields.WithOptions(out))
	}

	return fields.New(kind, key, opts...), nil
}

func parseFilter(raw string) (filter.Filter, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(raw), ":")
	switch strings.ToLower(name) {
	case "trim":
		return filter.Trim(), nil
	case "upper":
		return filter.Upper(), nil
	case "lower":
		return filter.Lower(), nil
	case "int":
		return filter.Int(), nil
	case "float":
		return filter.Float(), nil
	case "bool":
		return filter.Bool(), nil
	case "date":
		return filter.Date(arg), nil
	case "sanitize":
		return filter.Sanitize(), nil
	case "default":
		return filter.Default(arg), nil
	default:
		return nil, fmt.Errorf("unknown filter %q", raw)
	}
}

func parseValidator(spec ValidatorSpec) (validate.Validator, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Type)) {
	case "required":
		return validate.Required(spec.Message), nil
	case "length":
		min, max := 0, -1
		if spec.Min != nil {
			min = int(*spec.Min)
		}
		if spec.Max != nil {
			max = int(*spec.Max)
		}
		return validate.Length(min, max, spec.Message), nil
	case "regex":
		if spec.Pattern == "" {
			return nil, fmt.Errorf("regex validator requires a pattern")
		}
		if _, err := regexp.Compile(spec.Pattern); err != nil {
			return nil, fmt.Errorf("regex validator: %w", err)
		}
		return validate.Regex(spec.Pattern, spec.Message), nil
	case "date":
		return validate.Date(spec.Layout, spec.Message), nil
	case "range":
		min, max := math.Inf(-1), math.Inf(1)
		if spec.Min != nil {
			min = *spec.Min
		}
		if spec.Max != nil {
			max = *spec.Max
		}
		return validate.Range(min, max, spec.Message), nil
	case "choice":
		return validate.Choice(spec.Values...), nil
	case "tag":
		if spec.Tag == "" {
			return nil, fmt.Errorf("tag validator requires a tag")
		}
		return validate.Tag(spec.Tag, spec.Message), nil
	default:
		return nil, fmt.Errorf("unknown validator %q", spec.Type)
	}
}
