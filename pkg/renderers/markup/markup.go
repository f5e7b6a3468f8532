// Package markup renders a form as a plain HTML fragment: the form tag, one
// wrapper per field with its label and validation messages, extra hidden
// inputs and the closing tag.
package markup

import (
	"context"
	"strings"

	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/render"
)

// Name is the registry name of the renderer.
const Name = "markup"

// Option configures the renderer.
type Option func(*Renderer)

// WithWrapper sets the element that wraps each field. Defaults to div.
func WithWrapper(tag string, attrs html.Attributes) Option {
	return func(r *Renderer) {
		if tag = strings.TrimSpace(tag); tag != "" {
			r.wrapper = tag
		}
		r.wrapperAttrs = attrs.Clone()
	}
}

// WithErrorClass sets the class of the message lists. Defaults to "errors".
func WithErrorClass(class string) Option {
	return func(r *Renderer) {
		r.errorClass = class
	}
}

// WithoutErrors suppresses validation messages.
func WithoutErrors() Option {
	return func(r *Renderer) {
		r.hideErrors = true
	}
}

// Renderer produces HTML fragments.
type Renderer struct {
	wrapper      string
	wrapperAttrs html.Attributes
	errorClass   string
	hideErrors   bool
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{wrapper: "div", errorClass: "errors"}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render applies options to f and returns the fragment.
func (r *Renderer) Render(ctx context.Context, f *form.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	render.Apply(f, options)
	return []byte(r.Fragment(f, options)), nil
}

// Fragment renders f without applying options values or errors.
func (r *Renderer) Fragment(f *form.Form, options render.RenderOptions) string {
	var b strings.Builder
	b.WriteString(f.Open())
	if !r.hideErrors {
		if errs, ok := f.Errors[form.FormErrorKey]; ok {
			b.WriteString(r.messages(errs.Messages))
		}
	}

	open := "<" + r.wrapper + r.wrapperAttrs.Render() + ">"
	for _, field := range render.SelectFields(f, options.Subset) {
		b.WriteString(open)
		b.WriteString(field.RenderWithLabel())
		if !r.hideErrors {
			if errs, ok := f.Errors[field.Key]; ok {
				b.WriteString(r.messages(errs.Messages))
			}
		}
		b.WriteString("</" + r.wrapper + ">")
	}

	b.WriteString(render.RenderHidden(options.Hidden))
	b.WriteString(f.Close())
	return b.String()
}

func (r *Renderer) messages(list []string) string {
	if len(list) == 0 {
		return ""
	}
	attrs := html.Attributes{"class": r.errorClass}
	var b strings.Builder
	b.WriteString("<ul" + attrs.Render() + ">")
	for _, msg := range list {
		b.WriteString("<li>" + html.Escape(msg) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
