package render

import (
	"context"

	"github.com/goliatone/go-form/pkg/form"
)

// Renderer converts a live form into a byte representation (HTML fragment,
// full page, terminal submission, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, f *form.Form, options RenderOptions) ([]byte, error)
}

// Func adapts a function into a Renderer.
type Func struct {
	ID   string
	Type string
	Fn   func(ctx context.Context, f *form.Form, options RenderOptions) ([]byte, error)
}

func (r Func) Name() string        { return r.ID }
func (r Func) ContentType() string { return r.Type }

func (r Func) Render(ctx context.Context, f *form.Form, options RenderOptions) ([]byte, error) {
	return r.Fn(ctx, f, options)
}
