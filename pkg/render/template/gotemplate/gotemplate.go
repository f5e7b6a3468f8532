package gotemplate

import (
	"fmt"
	"io/fs"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-form/pkg/render/template"
)

var _ template.TemplateRenderer = (*gotemplatepkg.Engine)(nil)

// NewGoTemplate builds a go-template engine reading templates from files.
// The extension defaults to DefaultExtension and the package filters (attrs,
// stringify, trim) are available. opts are applied last and may replace the
// file system or extension.
func NewGoTemplate(files fs.FS, opts ...gotemplatepkg.Option) (*gotemplatepkg.Engine, error) {
	registerBuiltinFilters()

	base := []gotemplatepkg.Option{gotemplatepkg.WithExtension(DefaultExtension)}
	if files != nil {
		base = append(base, gotemplatepkg.WithFS(files))
	}
	engine, err := gotemplatepkg.NewRenderer(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: configure go-template engine: %w", err)
	}
	return engine, nil
}
