// Package page renders a form inside a full HTML document. The layout is a
// pongo2 template, optionally replaced and styled by a go-theme selection.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	gotemplatepkg "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/render"
	rendertemplate "github.com/goliatone/go-form/pkg/render/template"
	"github.com/goliatone/go-form/pkg/render/template/gotemplate"
	"github.com/goliatone/go-form/pkg/renderers/markup"
)

// Name is the registry name of the renderer.
const Name = "page"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS     fs.FS
	engine         rendertemplate.TemplateRenderer
	goTemplate     bool
	goTemplateOpts []gotemplatepkg.Option
	markup         *markup.Renderer
	selector       theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	lang           string
	bodyAttrs      html.Attributes
}

// WithTemplatesFS replaces the embedded templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		if dir != "" {
			cfg.templateFS = os.DirFS(dir)
		}
	}
}

// WithTemplateRenderer injects a template engine. Template options are
// ignored when set.
func WithTemplateRenderer(engine rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		cfg.engine = engine
	}
}

// WithGoTemplate renders the layout with a go-template engine instead of the
// package pongo2 engine. opts are passed to the go-template constructor after
// the templates file system.
func WithGoTemplate(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.goTemplate = true
		cfg.goTemplateOpts = append(cfg.goTemplateOpts, opts...)
	}
}

// WithMarkup sets the renderer used for the form fragment.
func WithMarkup(r *markup.Renderer) Option {
	return func(cfg *config) {
		cfg.markup = r
	}
}

// WithThemeSelector enables theming. defaultTheme and defaultVariant are used
// when render options do not name a theme.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.defaultTheme = defaultTheme
		cfg.defaultVariant = defaultVariant
	}
}

// WithLang sets the document language. Defaults to "en".
func WithLang(lang string) Option {
	return func(cfg *config) {
		cfg.lang = lang
	}
}

// WithBodyAttrs sets attributes on the body element.
func WithBodyAttrs(attrs html.Attributes) Option {
	return func(cfg *config) {
		cfg.bodyAttrs = attrs.Clone()
	}
}

// Renderer produces complete HTML pages.
type Renderer struct {
	engine         rendertemplate.TemplateRenderer
	markup         *markup.Renderer
	selector       theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	lang           string
	bodyAttrs      html.Attributes
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a Renderer backed by the embedded layout unless overridden.
func New(opts ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), lang: "en"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	engine := cfg.engine
	switch {
	case engine != nil:
	case cfg.goTemplate:
		e, err := gotemplate.NewGoTemplate(cfg.templateFS, cfg.goTemplateOpts...)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		engine = e
	default:
		e, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		engine = e
	}
	if cfg.markup == nil {
		cfg.markup = markup.New()
	}

	return &Renderer{
		engine:         engine,
		markup:         cfg.markup,
		selector:       cfg.selector,
		defaultTheme:   cfg.defaultTheme,
		defaultVariant: cfg.defaultVariant,
		lang:           cfg.lang,
		bodyAttrs:      cfg.bodyAttrs,
	}, nil
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render applies options to f and executes the layout.
func (r *Renderer) Render(ctx context.Context, f *form.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	themeCtx, err := r.selectTheme(options.Theme, options.Variant)
	if err != nil {
		return nil, err
	}

	render.Apply(f, options)
	title := options.Title
	if title == "" {
		title = f.Name
	}

	data := map[string]any{
		"title":      title,
		"lang":       r.lang,
		"form":       r.markup.Fragment(f, options),
		"form_name":  f.Name,
		"errors":     f.ErrorMessages(),
		"theme":      themeCtx,
		"body_attrs": map[string]any(r.bodyAttrs),
	}
	out, err := r.engine.RenderTemplate(themeCtx.template(DefaultTemplate), data)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) selectTheme(name, variant string) (themeContext, error) {
	if r.selector == nil {
		return themeContext{}, nil
	}
	if name == "" {
		name = r.defaultTheme
	}
	if variant == "" {
		variant = r.defaultVariant
	}
	selection, err := r.selector.Select(name, variant)
	if err != nil {
		return themeContext{}, fmt.Errorf("page renderer: select theme %q: %w", name, err)
	}
	return buildThemeContext(selection), nil
}
