package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/definition"
	"github.com/goliatone/go-form/pkg/openapi"
)

const fetchTimeout = 30 * time.Second

var errNoDefinitions = errors.New("no forms loaded: pass --definitions or --openapi")

type globalOptions struct {
	definitions     string
	openapi         string
	validateOpenAPI bool
	verbose         bool
}

func (o *globalOptions) logger() (*zap.Logger, error) {
	if o.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadStore merges the definition files and the forms derived from the
// OpenAPI document into one store.
func (o *globalOptions) loadStore(ctx context.Context) (*definition.Store, error) {
	store := definition.NewStore()

	if path := strings.TrimSpace(o.definitions); path != "" {
		loaded, err := loadDefinitions(path)
		if err != nil {
			return nil, err
		}
		store = loaded
	}

	if raw := strings.TrimSpace(o.openapi); raw != "" {
		loaderOpts := []openapi.LoaderOption{openapi.WithHTTPFallback(fetchTimeout)}
		if o.validateOpenAPI {
			loaderOpts = append(loaderOpts, openapi.WithValidation())
		}
		doc, err := openapi.NewLoader(loaderOpts...).Load(ctx, parseSource(raw))
		if err != nil {
			return nil, err
		}
		if err := store.Add(doc.Definitions(), doc.Location()); err != nil {
			return nil, err
		}
	}

	if store.Empty() {
		return nil, errNoDefinitions
	}
	return store, nil
}

func (o *globalOptions) entry(ctx context.Context, id string) (definition.Entry, error) {
	store, err := o.loadStore(ctx)
	if err != nil {
		return definition.Entry{}, err
	}
	entry, ok := store.Entry(id)
	if !ok {
		return definition.Entry{}, fmt.Errorf("form %q not found (available: %s)", id, strings.Join(store.IDs(), ", "))
	}
	return entry, nil
}

func loadDefinitions(path string) (*definition.Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}
	if info.IsDir() {
		return definition.LoadFS(os.DirFS(path))
	}
	return definition.LoadFile(path)
}

func parseSource(raw string) openapi.Source {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return openapi.SourceFromURL(raw)
	}
	return openapi.SourceFromFile(raw)
}
