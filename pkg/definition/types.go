package definition

// Document is the on-disk shape of a definition file.
type Document struct {
	Forms map[string]FormSpec `json:"forms" yaml:"forms"`
}

// FormSpec declares one form.
type FormSpec struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Method    string         `json:"method,omitempty" yaml:"method,omitempty"`
	Action    string         `json:"action,omitempty" yaml:"action,omitempty"`
	Multipart bool           `json:"multipart,omitempty" yaml:"multipart,omitempty"`
	Protected bool           `json:"protected,omitempty" yaml:"protected,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Fields    []FieldSpec    `json:"fields" yaml:"fields"`
}

// FieldSpec declares one field.
type FieldSpec struct {
	Key           string            `json:"key" yaml:"key"`
	Kind          string            `json:"kind" yaml:"kind"`
	Name          string            `json:"name,omitempty" yaml:"name,omitempty"`
	InputType     string            `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Label         string            `json:"label,omitempty" yaml:"label,omitempty"`
	LabelAttrs    map[string]any    `json:"labelAttrs,omitempty" yaml:"labelAttrs,omitempty"`
	LabelPosition string            `json:"labelPosition,omitempty" yaml:"labelPosition,omitempty"`
	Unwrapped     bool              `json:"unwrapped,omitempty" yaml:"unwrapped,omitempty"`
	Attrs         map[string]any    `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Value         any               `json:"value,omitempty" yaml:"value,omitempty"`
	Required      bool              `json:"required,omitempty" yaml:"required,omitempty"`
	ButtonMode    bool              `json:"buttonMode,omitempty" yaml:"buttonMode,omitempty"`
	DateLayout    string            `json:"dateLayout,omitempty" yaml:"dateLayout,omitempty"`
	Filters       []string          `json:"filters,omitempty" yaml:"filters,omitempty"`
	Validators    []ValidatorSpec   `json:"validators,omitempty" yaml:"validators,omitempty"`
	Choices       []ChoiceSpec      `json:"choices,omitempty" yaml:"choices,omitempty"`
	Options       []OptionGroupSpec `json:"options,omitempty" yaml:"options,omitempty"`
}

// ValidatorSpec declares a validator by type.
type ValidatorSpec struct {
	Type    string   `json:"type" yaml:"type"`
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Layout  string   `json:"layout,omitempty" yaml:"layout,omitempty"`
	Tag     string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Values  []any    `json:"values,omitempty" yaml:"values,omitempty"`
	Message string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// ChoiceSpec is a (label, value) pair.
type ChoiceSpec struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value any    `json:"value" yaml:"value"`
}

// OptionGroupSpec is a run of select options, rendered as an optgroup when
// Label is set.
type OptionGroupSpec struct {
	Label   string       `json:"label,omitempty" yaml:"label,omitempty"`
	Options []ChoiceSpec `json:"options" yaml:"options"`
}
