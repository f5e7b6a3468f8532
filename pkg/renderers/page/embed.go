package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// DefaultTemplate is the layout used when no theme overrides it.
const DefaultTemplate = "templates/page.tmpl"

// ThemeTemplateKey is the manifest template entry that replaces
// DefaultTemplate.
const ThemeTemplateKey = "forms.page"

// StylesheetAsset is the manifest asset linked from the page head.
const StylesheetAsset = "forms.stylesheet"

// TemplatesFS exposes the embedded layout templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
