package openapi

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Media types checked, in order, when an operation accepts several bodies.
var preferredMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Document is a parsed OpenAPI document.
type Document struct {
	source Source
	spec   *openapi3.T
}

// Source returns the origin of the document.
func (d *Document) Source() Source {
	return d.source
}

// Location returns the source location or "" when unknown.
func (d *Document) Location() string {
	if d == nil || d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Spec exposes the underlying kin-openapi document.
func (d *Document) Spec() *openapi3.T {
	return d.spec
}

// Operation is an OpenAPI operation that accepts a request body.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	MediaType   string
	Schema      *openapi3.Schema
}

// Operations lists every operation with a resolvable request body schema,
// sorted by id. Operations without an operationId are keyed "method:path".
func (d *Document) Operations() []Operation {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return nil
	}

	var out []Operation
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
				continue
			}
			mediaType, schema := requestSchema(op.RequestBody.Value.Content)
			if schema == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, Operation{
				ID:          id,
				Method:      strings.ToUpper(method),
				Path:        path,
				Summary:     op.Summary,
				Description: op.Description,
				MediaType:   mediaType,
				Schema:      schema,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Operation returns the operation registered under id.
func (d *Document) Operation(id string) (Operation, bool) {
	for _, op := range d.Operations() {
		if op.ID == id {
			return op, true
		}
	}
	return Operation{}, false
}

// Multipart reports whether the operation submits as multipart/form-data.
func (o Operation) Multipart() bool {
	return o.MediaType == "multipart/form-data"
}

func requestSchema(content openapi3.Content) (string, *openapi3.Schema) {
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mediaType, mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		mt := content[key]
		if mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return key, mt.Schema.Value
		}
	}
	return "", nil
}
