package fields

import (
	"fmt"
	"strings"
)

// Kind discriminates the field variants.
type Kind int

const (
	// KindUnknown is the zero value. It carries no rendering rules and any
	// attempt to render it panics with ErrNotImplemented.
	KindUnknown Kind = iota
	KindInput
	KindText
	KindPassword
	KindDate
	KindEmail
	KindFile
	KindHidden
	KindSubmit
	KindButton
	KindTextarea
	KindSelect
	KindRadio
	KindCheckbox
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindInput:    "input",
	KindText:     "text",
	KindPassword: "password",
	KindDate:     "date",
	KindEmail:    "email",
	KindFile:     "file",
	KindHidden:   "hidden",
	KindSubmit:   "submit",
	KindButton:   "button",
	KindTextarea: "textarea",
	KindSelect:   "select",
	KindRadio:    "radio",
	KindCheckbox: "checkbox",
}

// String returns the lower case kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a kind name such as "text" or "checkbox".
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for kind, candidate := range kindNames {
		if kind == KindUnknown {
			continue
		}
		if candidate == needle {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("fields: unknown kind %q", name)
}

// MultiValue reports whether the kind renders from a list of choices.
func (k Kind) MultiValue() bool {
	switch k {
	case KindSelect, KindRadio, KindCheckbox:
		return true
	default:
		return false
	}
}

// inputType maps input-backed kinds to their type attribute.
func (k Kind) inputType() string {
	switch k {
	case KindText:
		return "text"
	case KindPassword:
		return "password"
	case KindDate:
		return "date"
	case KindEmail:
		return "email"
	case KindFile:
		return "file"
	case KindHidden:
		return "hidden"
	case KindSubmit:
		return "submit"
	case KindRadio:
		return "radio"
	case KindCheckbox:
		return "checkbox"
	default:
		return ""
	}
}
