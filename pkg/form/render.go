package form

import (
	"strings"

	"github.com/goliatone/go-form/pkg/html"
)

// Open renders the start tag. Overrides are applied on top of the form
// attributes, e.g. Open(html.Attributes{"action": "/put"}).
func (f *Form) Open(overrides ...html.Attributes) string {
	attrs := f.Attrs.Clone()
	attrs["action"] = f.Action
	attrs["enctype"] = f.Enctype()
	attrs["method"] = strings.ToLower(f.Method)
	attrs["name"] = f.Name
	attrs = attrs.Merge(overrides...)
	return "<form " + attrs.Flatten() + ">"
}

// Close renders the end tag, preceded by the method override field when the
// declared method is not GET or POST.
func (f *Form) Close() string {
	if f.HTTPRequestMethod == "" {
		return "</form>"
	}
	override := html.Attributes{
		"name":  MethodOverrideField,
		"type":  "hidden",
		"value": f.HTTPRequestMethod,
	}
	return "<input " + override.Flatten() + " /></form>"
}

// RenderFields renders every field with its label, each wrapped in a <div>.
func (f *Form) RenderFields() string {
	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString("<div>")
		b.WriteString(field.RenderWithLabel())
		b.WriteString("</div>")
	}
	return b.String()
}

// Render returns the complete form markup.
func (f *Form) Render() string {
	return f.Open() + f.RenderFields() + f.Close()
}

// String implements fmt.Stringer.
func (f *Form) String() string {
	return f.Render()
}
