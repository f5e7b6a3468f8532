package form

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-form/pkg/definition"
	"github.com/goliatone/go-form/pkg/openapi"
)

// LoadDefinitions reads every JSON/YAML definition file under fsys.
func LoadDefinitions(fsys fs.FS) (*definition.Store, error) {
	return definition.LoadFS(fsys)
}

// LoadOpenAPI derives one form per operation request body of the document at
// src.
func LoadOpenAPI(ctx context.Context, src openapi.Source, options ...openapi.LoaderOption) (*definition.Store, error) {
	doc, err := openapi.NewLoader(options...).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return doc.Store()
}
