package main

import (
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/renderers/markup"
	"github.com/goliatone/go-form/pkg/renderers/page"
	"github.com/goliatone/go-form/pkg/renderers/tui"
)

type pageOptions struct {
	templates     string
	themeManifest string
	themeName     string
	variant       string
	lang          string
	engine        string
}

// Page template engines selectable with --engine.
const (
	enginePongo2     = "pongo2"
	engineGoTemplate = "go-template"
)

func (p *pageOptions) renderer() (*page.Renderer, error) {
	opts := []page.Option{page.WithTemplatesDir(p.templates)}
	if p.lang != "" {
		opts = append(opts, page.WithLang(p.lang))
	}
	switch strings.ToLower(strings.TrimSpace(p.engine)) {
	case "", enginePongo2:
	case engineGoTemplate:
		opts = append(opts, page.WithGoTemplate())
	default:
		return nil, fmt.Errorf("unknown template engine %q (want %s or %s)", p.engine, enginePongo2, engineGoTemplate)
	}
	if p.themeManifest != "" {
		selector, err := loadThemeSelector(p.themeManifest)
		if err != nil {
			return nil, err
		}
		opts = append(opts, page.WithThemeSelector(selector, p.themeName, p.variant))
	}
	return page.New(opts...)
}

func newRegistry(pageOpts *pageOptions, tuiOpts ...tui.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(markup.New())

	pageRenderer, err := pageOpts.renderer()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(pageRenderer)
	registry.MustRegister(tui.New(tuiOpts...))

	if err := registry.SetDefault(markup.Name); err != nil {
		return nil, err
	}
	return registry, nil
}

// manifestSelector serves a single theme manifest read from disk.
type manifestSelector struct {
	manifest *theme.Manifest
}

func loadThemeSelector(path string) (theme.ThemeSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme manifest: %w", err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("theme manifest %s: %w", path, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("theme manifest %s: name is required", path)
	}
	return &manifestSelector{manifest: &manifest}, nil
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("theme %q not found", name)
	}
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %q has no variant %q", s.manifest.Name, variant)
		}
	}
	return &theme.Selection{Theme: s.manifest.Name, Variant: variant, Manifest: s.manifest}, nil
}
