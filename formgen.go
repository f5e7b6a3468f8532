// Package form is the top-level entry point of go-form. It re-exports the
// types most callers need and wires the default renderers so a form can be
// declared, filled from a request and rendered without importing every
// sub-package.
package form

import (
	"context"

	"github.com/goliatone/go-form/pkg/fields"
	pkgform "github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/renderers/markup"
	"github.com/goliatone/go-form/pkg/renderers/page"
	"github.com/goliatone/go-form/pkg/session"
)

// Form is a live form instance.
type Form = pkgform.Form

// Definition is a reusable form declaration.
type Definition = pkgform.Definition

// Option configures a form instance.
type Option = pkgform.Option

// Field is a single form control.
type Field = fields.Field

// RenderOptions describes per-request overrides that renderers apply before
// producing output.
type RenderOptions = render.RenderOptions

// FieldSubset restricts rendering to selected keys or kinds.
type FieldSubset = render.FieldSubset

// Define declares a form from field prototypes.
func Define(name string, prototypes ...*fields.Field) *Definition {
	return pkgform.Define(name, prototypes...)
}

// DefineMultipart declares a form that submits as multipart/form-data.
func DefineMultipart(name string, prototypes ...*fields.Field) *Definition {
	return pkgform.DefineMultipart(name, prototypes...)
}

// NewSession returns an in-memory session store for CSRF protected forms.
func NewSession() session.Store {
	return session.NewMemory()
}

// NewRegistry returns a registry holding the markup and page renderers, with
// markup as the default.
func NewRegistry(pageOptions ...page.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(markup.New())

	pageRenderer, err := page.New(pageOptions...)
	if err != nil {
		return nil, err
	}
	registry.MustRegister(pageRenderer)
	if err := registry.SetDefault(markup.Name); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderHTML renders f as an HTML fragment with the markup renderer.
func RenderHTML(ctx context.Context, f *Form, options RenderOptions) ([]byte, error) {
	return markup.New().Render(ctx, f, options)
}

// RenderPage renders f inside a complete HTML document.
func RenderPage(ctx context.Context, f *Form, options RenderOptions, pageOptions ...page.Option) ([]byte, error) {
	renderer, err := page.New(pageOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, f, options)
}
