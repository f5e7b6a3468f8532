package form

import (
	"io/fs"

	"github.com/goliatone/go-form/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page layout so callers can copy or
// extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
