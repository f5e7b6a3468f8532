package page_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	gotemplatepkg "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/renderers/page"
)

var contact = form.Define("Contact",
	fields.Text("email"),
	fields.Submit("save"),
)

const fragment = `<form action="/" enctype="application/x-www-form-urlencoded" method="post" name="Contact">` +
	`<div><label for="email">email</label><input id="email" name="email" type="text" /></div>` +
	`<div><input name="save" type="submit" value="save" /></div></form>`

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestRenderer_DefaultLayout(t *testing.T) {
	r, err := page.New(page.WithBodyAttrs(html.Attributes{"class": "app"}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), contact.New(), render.RenderOptions{Title: "Sign up"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)
	for _, want := range []string{
		`<html lang="en">`,
		`<title>Sign up</title>`,
		`<body class="app">`,
		`<h1>Sign up</h1>`,
		fragment,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected page to contain %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "<style>") || strings.Contains(got, "stylesheet") {
		t.Fatalf("unexpected theme output without selector:\n%s", got)
	}
}

func TestRenderer_GoTemplateEngine(t *testing.T) {
	pongo, err := page.New(page.WithBodyAttrs(html.Attributes{"class": "app"}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	goTemplate, err := page.New(page.WithGoTemplate(), page.WithBodyAttrs(html.Attributes{"class": "app"}))
	if err != nil {
		t.Fatalf("new go-template: %v", err)
	}

	options := render.RenderOptions{Title: "Sign up"}
	want, err := pongo.Render(context.Background(), contact.New(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got, err := goTemplate.Render(context.Background(), contact.New(), options)
	if err != nil {
		t.Fatalf("render go-template: %v", err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("engine output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_GoTemplateOptions(t *testing.T) {
	files := fstest.MapFS{
		page.DefaultTemplate: {Data: []byte(`{{ site }}: {{ title }}`)},
	}
	r, err := page.New(
		page.WithTemplatesFS(files),
		page.WithGoTemplate(gotemplatepkg.WithGlobalData(map[string]any{"site": "Acme"})),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), contact.New(), render.RenderOptions{Title: "Join"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff("Acme: Join", string(out)); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_ThemeSelection(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
			"space": "4px",
		},
		Templates: map[string]string{
			page.ThemeTemplateKey: "themes/acme/layout.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/acme",
			Files: map[string]string{
				page.StylesheetAsset: "forms.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}

	files := fstest.MapFS{
		"themes/acme/layout.tmpl": {Data: []byte(
			`<title>{{ title }}</title><style>{{ theme.css_vars_style|safe }}</style><link href="{{ theme.stylesheet }}">{{ form|safe }}`,
		)},
	}
	r, err := page.New(
		page.WithTemplatesFS(files),
		page.WithThemeSelector(selector, "acme", "light"),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), contact.New(), render.RenderOptions{Variant: "dark"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<title>Contact</title><style>:root { --brand: #654321; --space: 4px; }</style><link href="/assets/acme/forms.css">` + fragment
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]selectorCall{{name: "acme", variant: "dark"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_ThemeError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("unknown theme")}
	r, err := page.New(page.WithThemeSelector(selector, "", ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := r.Render(context.Background(), contact.New(), render.RenderOptions{Theme: "missing"}); err == nil {
		t.Fatalf("expected theme selection error")
	}
}

func TestRenderer_Registry(t *testing.T) {
	r, err := page.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(r)

	got, err := registry.Get("PAGE")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got.ContentType())
	}
}
