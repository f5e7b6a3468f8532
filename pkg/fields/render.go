package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/html"
)

// Render returns the markup of the bare control.
func (f *Field) Render() string {
	switch f.Kind {
	case KindInput, KindText, KindPassword, KindDate, KindEmail, KindFile, KindHidden:
		return f.renderInput(false)
	case KindSubmit:
		return f.renderSubmit()
	case KindButton:
		return f.renderButton()
	case KindTextarea:
		return f.renderTextarea(false)
	case KindSelect:
		return f.renderSelect(false)
	case KindRadio, KindCheckbox:
		return f.renderChoices()
	default:
		// KindUnknown and out of range kinds.
		panic(fmt.Errorf("%w: render on %s field %q", ErrNotImplemented, f.Kind, f.Name))
	}
}

// RenderWithLabel returns the control combined with its label. Inputs,
// textareas and selects are prefixed with a <label for=id>; submit and button
// controls carry their label as content; radio and checkbox groups with more
// than one choice and an explicit label are wrapped in a fieldset.
func (f *Field) RenderWithLabel() string {
	switch f.Kind {
	case KindInput, KindText, KindPassword, KindDate, KindEmail, KindFile, KindHidden:
		return f.Label.RenderWith(f.LabelText(), f.ID()) + f.renderInput(true)
	case KindSubmit:
		return f.renderSubmit()
	case KindButton:
		return f.renderButton()
	case KindTextarea:
		return f.Label.RenderWith(f.LabelText(), f.ID()) + f.renderTextarea(true)
	case KindSelect:
		return f.Label.RenderWith(f.LabelText(), f.ID()) + f.renderSelect(true)
	case KindRadio, KindCheckbox:
		if len(f.Choices) > 1 && f.HasLabel() {
			return "<fieldset><legend>" + html.Escape(f.Label.Text) + "</legend>" + f.renderChoices() + "</fieldset>"
		}
		return f.renderChoices()
	default:
		// KindUnknown and out of range kinds.
		panic(fmt.Errorf("%w: render_with_label on %s field %q", ErrNotImplemented, f.Kind, f.Name))
	}
}

func (f *Field) typeAttribute() string {
	if f.Kind == KindInput {
		if f.InputType == "" {
			return "text"
		}
		return f.InputType
	}
	return f.Kind.inputType()
}

func (f *Field) baseAttrs(withID bool) html.Attributes {
	attrs := f.Attrs.Clone()
	attrs["name"] = f.Name
	if withID {
		attrs["id"] = f.ID()
	}
	return attrs
}

func (f *Field) renderInput(withID bool) string {
	attrs := f.baseAttrs(withID)
	attrs["type"] = f.typeAttribute()
	if f.Kind == KindFile {
		delete(attrs, "value")
	} else if f.Value != nil {
		attrs["value"] = html.Stringify(f.Value)
	}
	return "<input " + attrs.Flatten() + " />"
}

// renderSubmit falls back to the label text when no value is set.
func (f *Field) renderSubmit() string {
	value := f.Value
	if value == nil {
		value = f.LabelText()
	}
	attrs := f.baseAttrs(false)
	if f.ButtonMode {
		attrs["type"] = "submit"
		return "<button " + attrs.Flatten() + ">" + html.Escape(html.Stringify(value)) + "</button>"
	}
	attrs["type"] = f.typeAttribute()
	attrs["value"] = html.Stringify(value)
	return "<input " + attrs.Flatten() + " />"
}

func (f *Field) renderButton() string {
	attrs := f.baseAttrs(false)
	if f.Value != nil {
		attrs["value"] = html.Stringify(f.Value)
	}
	return "<button " + attrs.Flatten() + ">" + html.Escape(f.LabelText()) + "</button>"
}

func (f *Field) renderTextarea(withID bool) string {
	attrs := f.baseAttrs(withID)
	delete(attrs, "value")
	return "<textarea " + attrs.Flatten() + ">" + html.Escape(html.Stringify(f.Value)) + "</textarea>"
}

func (f *Field) renderSelect(withID bool) string {
	attrs := f.baseAttrs(withID)
	delete(attrs, "value")
	if filter.IsSlice(f.Value) {
		attrs["multiple"] = true
	}
	selected := f.selectedValues()

	var b strings.Builder
	b.WriteString("<select ")
	b.WriteString(attrs.Flatten())
	b.WriteString(">")
	for _, group := range f.Options {
		if group.Label != "" {
			b.WriteString(`<optgroup label="` + html.Escape(group.Label) + `">`)
		}
		for _, opt := range group.Options {
			value := html.Stringify(opt.Value)
			b.WriteString(`<option value="` + html.Escape(value) + `"`)
			if _, ok := selected[value]; ok {
				b.WriteString(` selected="selected"`)
			}
			b.WriteString(">" + html.Escape(opt.Label) + "</option>")
		}
		if group.Label != "" {
			b.WriteString("</optgroup>")
		}
	}
	b.WriteString("</select>")
	return b.String()
}

func (f *Field) renderChoices() string {
	choices := f.Choices
	bare := len(choices) == 0
	if bare {
		choices = []Choice{{Value: f.Value}}
	}
	selected := f.selectedValues()

	var b strings.Builder
	for i, choice := range choices {
		id := f.ID()
		if len(choices) > 1 {
			id += "_" + strconv.Itoa(i)
		}

		attrs := f.Attrs.Clone()
		attrs["id"] = id
		attrs["name"] = f.Name
		attrs["type"] = f.Kind.inputType()
		attrs["value"] = html.Stringify(choice.Value)
		if bare {
			attrs["checked"] = len(selected) > 0
		} else if _, ok := selected[html.Stringify(choice.Value)]; ok && choice.Value != nil {
			attrs["checked"] = true
		}
		input := "<input " + attrs.Flatten() + " />"

		text := choice.Label
		if text == "" {
			text = f.LabelText()
		}

		switch {
		case f.Wrapped && f.LabelPosition == LabelRight:
			b.WriteString(f.Label.Wrap(input+html.Escape(text), id))
		case f.Wrapped:
			b.WriteString(f.Label.Wrap(html.Escape(text)+input, id))
		case f.LabelPosition == LabelRight:
			b.WriteString(input + f.Label.RenderWith(text, id))
		default:
			b.WriteString(f.Label.RenderWith(text, id) + input)
		}
	}
	return b.String()
}

// selectedValues returns the stringified current value(s). Comparison against
// choices is done on the string form, so 1 and "1" match.
func (f *Field) selectedValues() map[string]struct{} {
	out := map[string]struct{}{}
	if f.Value == nil {
		return out
	}
	for _, v := range filter.ToSlice(f.Value) {
		s := html.Stringify(v)
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}
