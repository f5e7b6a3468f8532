package page

import (
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext is the theme data templates receive.
type themeContext struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"css_vars,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
	templates    map[string]string
}

// buildThemeContext flattens a selection, applying variant tokens, templates
// and assets over the manifest defaults.
func buildThemeContext(sel *theme.Selection) themeContext {
	if sel == nil || sel.Manifest == nil {
		return themeContext{}
	}
	manifest := sel.Manifest

	ctx := themeContext{
		Name:      sel.Theme,
		Variant:   sel.Variant,
		Tokens:    mergeStrings(manifest.Tokens, nil),
		templates: mergeStrings(manifest.Templates, nil),
	}
	if ctx.Name == "" {
		ctx.Name = manifest.Name
	}
	assets := mergeStrings(manifest.Assets.Files, nil)
	prefix := manifest.Assets.Prefix

	if variant, ok := manifest.Variants[sel.Variant]; ok {
		ctx.Tokens = mergeStrings(ctx.Tokens, variant.Tokens)
		ctx.templates = mergeStrings(ctx.templates, variant.Templates)
		assets = mergeStrings(assets, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	if len(ctx.Tokens) > 0 {
		ctx.CSSVars = make(map[string]string, len(ctx.Tokens))
		for key, value := range ctx.Tokens {
			ctx.CSSVars["--"+key] = value
		}
		ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	}
	if file, ok := assets[StylesheetAsset]; ok {
		ctx.Stylesheet = assetURL(prefix, file)
	}
	return ctx
}

func (c themeContext) template(fallback string) string {
	if name := strings.TrimSpace(c.templates[ThemeTemplateKey]); name != "" {
		return name
	}
	return fallback
}

func assetURL(prefix, file string) string {
	if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	return strings.TrimSuffix(prefix, "/") + "/" + path.Clean(file)
}

func cssVarsStyle(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" " + key + ": " + vars[key] + ";")
	}
	b.WriteString(" }")
	return b.String()
}

func mergeStrings(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
