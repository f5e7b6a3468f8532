package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-form/pkg/html"
)

func registerBuiltinFilters() {
	builtins := map[string]pongo2.FilterFunction{
		"trim":      filterTrim,
		"attrs":     filterAttrs,
		"stringify": filterStringify,
	}
	for name, fn := range builtins {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAttrs renders a map as escaped HTML attributes with a leading space.
func filterAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	switch v := in.Interface().(type) {
	case html.Attributes:
		return pongo2.AsSafeValue(v.Render()), nil
	case map[string]any:
		return pongo2.AsSafeValue(html.Attributes(v).Render()), nil
	case map[string]string:
		attrs := make(html.Attributes, len(v))
		for key, value := range v {
			attrs[key] = value
		}
		return pongo2.AsSafeValue(attrs.Render()), nil
	}
	return pongo2.AsValue(""), nil
}

func filterStringify(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(html.Stringify(in.Interface())), nil
}
