package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrHTTPDisabled is returned when a URL source is loaded without an HTTP
// client configured.
var ErrHTTPDisabled = errors.New("openapi: http support disabled")

// Loader fetches and parses OpenAPI documents.
type Loader struct {
	fs           fs.FS
	http         *http.Client
	externalRefs bool
	validate     bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem sets the filesystem used for SourceFromFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient enables URL sources using client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.http = client
	}
}

// WithHTTPFallback enables URL sources with a default client bounded by
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		if l.http == nil {
			l.http = &http.Client{Timeout: timeout}
		}
	}
}

// WithExternalRefs allows $ref values that point outside the document.
func WithExternalRefs() LoaderOption {
	return func(l *Loader) {
		l.externalRefs = true
	}
}

// WithValidation validates documents after parsing. Examples are not checked.
func WithValidation() LoaderOption {
	return func(l *Loader) {
		l.validate = true
	}
}

// NewLoader builds a Loader. URL sources are rejected unless an HTTP option
// is supplied.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load reads src and parses it.
func (l *Loader) Load(ctx context.Context, src Source) (*Document, error) {
	if src == nil {
		return nil, errors.New("openapi: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("openapi: filesystem is not configured")
		}
		data, err = fs.ReadFile(l.fs, src.Location())
	case SourceKindURL:
		data, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", src.Location(), err)
	}
	return l.Parse(ctx, src, data)
}

// Parse decodes a JSON or YAML OpenAPI 3 payload.
func (l *Loader) Parse(ctx context.Context, src Source, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: l.externalRefs,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: parse: %w", err)
	}
	if l.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return &Document{source: src, spec: spec}, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	if l.http == nil {
		return nil, ErrHTTPDisabled
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
