package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
)

func stubRenderer(name string) render.Renderer {
	return render.Func{
		ID:   name,
		Type: "text/plain",
		Fn: func(_ context.Context, f *form.Form, _ render.RenderOptions) ([]byte, error) {
			return []byte(name + ":" + f.Name), nil
		},
	}
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer("markup"))
	registry.MustRegister(stubRenderer("Page"))

	if err := registry.Register(stubRenderer("markup")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(stubRenderer(" ")); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if diff := cmp.Diff([]string{"markup", "page"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("PAGE") {
		t.Fatalf("expected case-insensitive lookup")
	}

	def, err := registry.Get("")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if def.Name() != "markup" {
		t.Fatalf("expected first renderer as default, got %q", def.Name())
	}

	if err := registry.SetDefault("page"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	def, err = registry.Get("")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	out, err := def.Render(context.Background(), form.New(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Page:Form" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}
